package bignum

import "github.com/muukong/ucrypt"

// Mod sets z = y mod m for m > 0, z in [0, m) (spec.md §4.1.7 "Mod
// reduction"). Negative dividends are rejected, matching every call site
// of the original's uc_mod (prime.c, rand.c): general signed reduction
// with a non-negative result is ModInverse's job (and Div's, for the
// general signed law in spec.md §8).
func (z *Int) Mod(y, m *Int) error {
	if m.IsZero() || m.IsNegative() {
		return ucrypt.ErrInput
	}
	if y.IsNegative() {
		return ucrypt.ErrInput
	}
	if y.Lt(m) {
		z.Copy(y)
		return nil
	}
	q := New()
	return q.Div(z, y, m)
}

// reduceSigned returns y mod m in [0, m) for any sign of y, m > 0. Unlike
// Mod it accepts negative y, used internally by the number-theoretic
// routines that must stay in [0, m) while combining negative intermediate
// coefficients.
func reduceSigned(y, m *Int) *Int {
	out := New()
	if y.IsNegative() {
		var absY Int
		absY.Abs(y)
		r := New()
		r.Mod(&absY, m)
		if r.IsZero() {
			out.SetZero()
		} else {
			out.Sub(m, r)
		}
		return out
	}
	out.Mod(y, m)
	return out
}

// ModBasePow sets z = y mod Base^k: copy the bottom k limbs of y, discard
// the rest (spec.md §4.1.7 "Mod by base power").
func (z *Int) ModBasePow(y *Int, k int) error {
	if k < 0 {
		return ucrypt.ErrInput
	}
	var tmp Int
	if k >= y.Used {
		tmp.Copy(y)
		z.Copy(&tmp)
		return nil
	}
	tmp.grow(k)
	if k > 0 {
		copy(tmp.limbs[:k], y.limbs[:k])
	}
	tmp.Used = k
	if tmp.Used == 0 {
		tmp.Used = 1
	}
	tmp.Sign = Positive
	tmp.clamp()
	z.Copy(&tmp)
	return nil
}

// Gcd sets z = gcd(x, y) for strictly positive x, y using the Euclidean
// algorithm (spec.md §4.1.7 "GCD (bignum)").
func (z *Int) Gcd(x, y *Int) error {
	if !x.IsPositive() || !y.IsPositive() {
		return ucrypt.ErrInput
	}
	a, b := x.Clone(), y.Clone()
	for !b.IsZero() {
		q, r := New(), New()
		q.Div(r, a, b)
		a, b = b, r
	}
	z.Copy(a)
	return nil
}

// GcdDigit computes gcd(x, y) for two Digit-sized values using the binary
// (Stein's) algorithm (spec.md §4.1.7 "GCD (single word)").
func GcdDigit(x, y Digit) Digit {
	if x < y {
		x, y = y, x
	}
	g := Digit(1)
	for x%2 == 0 && y%2 == 0 {
		x /= 2
		y /= 2
		g *= 2
	}
	for x != 0 {
		for x%2 == 0 {
			x /= 2
		}
		for y%2 == 0 {
			y /= 2
		}
		var t Digit
		if x >= y {
			t = (x - y) / 2
		} else {
			t = (y - x) / 2
		}
		if x >= y {
			x = t
		} else {
			y = t
		}
	}
	return g * y
}

// ExtGcd computes g = gcd(x, y) along with Bezout coefficients u, v such
// that u*x + v*y = g (spec.md §4.1.7 "Extended GCD").
func ExtGcd(x, y *Int) (g, u, v *Int) {
	a, b := x.Clone(), y.Clone()
	u0, w0 := NewFromUint64(1), New()
	v0, x0 := New(), NewFromUint64(1)

	for !b.IsZero() {
		q, r := New(), New()
		q.Div(r, a, b)

		// (u, w) <- (w, u - q*w); (v, x) <- (x, v - q*x)
		qw := New()
		qw.Mul(q, w0)
		newW := New()
		newW.Sub(u0, qw)

		qx := New()
		qx.Mul(q, x0)
		newX := New()
		newX.Sub(v0, qx)

		u0, w0 = w0, newW
		v0, x0 = x0, newX

		a, b = b, r
	}

	return a, u0, v0
}

// Lcm sets z = lcm(x, y) = (x*y) / gcd(x, y) for strictly positive x, y.
func (z *Int) Lcm(x, y *Int) error {
	var g Int
	if err := g.Gcd(x, y); err != nil {
		return err
	}
	prod := New()
	prod.Mul(x, y)
	q, r := New(), New()
	if err := q.Div(r, prod, &g); err != nil {
		return err
	}
	z.Copy(q)
	return nil
}

// ModInverse sets z = y^-1 mod m, 0 <= z < m, using a variant of extended
// Euclid that keeps the running coefficient reduced modulo m at every step
// and brings any negative intermediate back into [0, m) by adding m once
// (spec.md §4.1.7 "Modular inverse").
func (z *Int) ModInverse(y, m *Int) error {
	if m.IsZero() || !m.IsPositive() {
		return ucrypt.ErrInput
	}

	a := reduceSigned(y, m)
	b := m.Clone()

	u0, w0 := NewFromUint64(1), New()

	for !b.IsZero() {
		q, r := New(), New()
		q.Div(r, a, b)

		qw := New()
		qw.Mul(q, w0)
		diff := New()
		diff.Sub(u0, qw)
		newW := reduceSigned(diff, m)

		u0, w0 = w0, newW
		a, b = b, r
	}

	if !a.IsOne() {
		return ucrypt.ErrInput
	}
	z.Copy(u0)
	return nil
}
