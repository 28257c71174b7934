package bignum

import "github.com/muukong/ucrypt"

// Div sets q = x div y and r = x mod y such that x = q*y + r and
// 0 <= r < |y| (spec.md §4.1.4 and the law in §8). y must be nonzero.
func (q *Int) Div(r, x, y *Int) error {
	if y.IsZero() {
		return ucrypt.ErrInput
	}

	// Fast paths (spec.md §4.1.4).
	if x.CmpMag(y) < 0 {
		var rr Int
		rr.Abs(x)
		finishDiv(q, r, New(), &rr, x, y)
		return nil
	}
	if x.CmpMag(y) == 0 {
		finishDiv(q, r, NewFromUint64(1), New(), x, y)
		return nil
	}

	qm, rm := divKnuth(x, y)

	finishDiv(q, r, qm, rm, x, y)
	return nil
}

// finishDiv applies the sign adjustment that turns a magnitude-only
// (qm, rm) with |x| = qm*|y| + rm, 0 <= rm < |y|, into the signed pair
// required by x = q*y + r, 0 <= r < |y|.
func finishDiv(q, r, qm, rm, x, y *Int) {
	switch {
	case x.Sign == Positive && y.Sign == Positive:
		q.Copy(qm)
		r.Copy(rm)
	case x.Sign == Positive && y.Sign == Negative:
		q.Neg(qm)
		r.Copy(rm)
	case x.Sign == Negative && y.Sign == Positive:
		if rm.IsZero() {
			q.Neg(qm)
			r.SetZero()
		} else {
			q.Neg(qm)
			q.SubDigit(q, 1)
			r.Sub(y, rm)
		}
	default: // both negative
		if rm.IsZero() {
			q.Copy(qm)
			r.SetZero()
		} else {
			q.AddDigit(qm, 1)
			var absY Int
			absY.Abs(y)
			r.Sub(&absY, rm)
		}
	}
	if q.IsZero() {
		q.Sign = Positive
	}
}

// divKnuth computes the magnitude quotient/remainder of |x| / |y| for
// |x| >= |y| > 0 using normalised schoolbook long division, Knuth Algorithm
// D shape (spec.md §4.1.4).
func divKnuth(xAbs, yAbs *Int) (q, r *Int) {
	if yAbs.Used == 1 {
		var rd Digit
		qq := New()
		qq.divDigitMag(xAbs, yAbs.limbs[0], &rd)
		rr := New()
		rr.SetDigit(rd)
		return qq, rr
	}

	// Step 1: normalise so that y's top limb has its MSB set within the
	// digit width.
	top := yAbs.limbs[yAbs.Used-1]
	shift := 0
	for (top<<uint(shift))&Digit(Base>>1) == 0 {
		shift++
	}

	var xn, yn Int
	xn.Sign, yn.Sign = Positive, Positive
	_ = xn.Lsh(abs(xAbs), shift)
	_ = yn.Lsh(abs(yAbs), shift)

	n := yn.Used
	m := xn.Used - n

	remLen := n + m + 1
	rem := make([]Digit, remLen)
	copy(rem, xn.limbs[:xn.Used])

	qDigits := make([]Digit, m+1)

	// Step 3: top correction.
	if compareLimbs(rem[m:m+n], yn.limbs[:n]) >= 0 {
		mulSubWindow(rem[m:m+n+1], yn.limbs[:n], 1)
		qDigits[m] = 1
	}

	// Step 4: main loop.
	for j := m - 1; j >= 0; j-- {
		topY := Word(yn.limbs[n-1])
		num := Word(rem[n+j])*Base + Word(rem[n+j-1])
		qhat := num / topY
		rhat := num % topY
		if qhat >= Base {
			qhat = Base - 1
			rhat = num - qhat*topY
		}

		y2 := Word(0)
		if n-2 >= 0 {
			y2 = Word(yn.limbs[n-2])
		}
		for rhat < Base {
			x2 := Word(0)
			if idx := n + j - 2; idx >= 0 {
				x2 = Word(rem[idx])
			}
			if qhat*y2 > rhat*Base+x2 {
				qhat--
				rhat += topY
			} else {
				break
			}
		}

		borrow := mulSubWindow(rem[j:j+n+1], yn.limbs[:n], Digit(qhat))
		if borrow {
			addBackWindow(rem[j:j+n+1], yn.limbs[:n])
			qhat--
		}
		qDigits[j] = Digit(qhat)
	}

	q = New()
	q.grow(len(qDigits))
	copy(q.limbs, qDigits)
	q.Used = len(qDigits)
	q.clamp()

	r = New()
	r.grow(n)
	copy(r.limbs, rem[:n])
	r.Used = n
	r.clamp()
	_ = r.Rsh(r, shift)

	return q, r
}

func abs(x *Int) *Int {
	var a Int
	a.Abs(x)
	return &a
}

// compareLimbs compares two equal-length little-endian digit slices as
// magnitudes, returning -1, 0, or 1.
func compareLimbs(a, b []Digit) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// mulSubWindow computes window -= qhat*y in place, where window has one
// more digit than y (a guard limb for the final borrow/carry), and reports
// whether the subtraction underflowed (meaning qhat was one too large and
// the caller must add y back once).
func mulSubWindow(window, y []Digit, qhat Digit) bool {
	var carry, borrow Word
	for i := 0; i < len(y); i++ {
		p := Word(qhat)*Word(y[i]) + carry
		carry = p >> DigitBits
		pLow := Digit(p & WordMask)

		need := Word(pLow) + borrow
		if Word(window[i]) < need {
			borrow = 1
		} else {
			borrow = 0
		}
		window[i] = Digit((Word(window[i]) - need) & WordMask)
	}
	need := carry + borrow
	out := false
	if Word(window[len(y)]) < need {
		out = true
	}
	window[len(y)] = Digit((Word(window[len(y)]) - need) & WordMask)
	return out
}

// addBackWindow computes window += y in place across the same window shape
// mulSubWindow uses, discarding any overflow out of the guard limb (Knuth
// guarantees it exactly cancels the borrow being corrected).
func addBackWindow(window, y []Digit) {
	var carry Word
	for i := 0; i < len(y); i++ {
		s := Word(window[i]) + Word(y[i]) + carry
		window[i] = Digit(s & WordMask)
		carry = s >> DigitBits
	}
	window[len(y)] = Digit((Word(window[len(y)]) + carry) & WordMask)
}

// divDigitMag sets q = |x| / d and *rem = |x| mod d for a single
// non-negative limb divisor d (spec.md §4.1.4 "Division by a single
// limb").
func (q *Int) divDigitMag(x *Int, d Digit, rem *Digit) {
	q.grow(x.Used)
	q.Used = x.Used
	var w Word
	for i := x.Used - 1; i >= 0; i-- {
		w = w<<DigitBits | Word(x.limbs[i])
		q.limbs[i] = Digit(w / Word(d))
		w %= Word(d)
	}
	q.Sign = Positive
	q.clamp()
	*rem = Digit(w)
}

// DivDigit sets q = x / d and *rem = x mod d for a single non-negative
// limb divisor d, preserving x's sign on q the way Div does for the
// general case (d is always treated as positive).
func (q *Int) DivDigit(x *Int, d Digit, rem *Digit) error {
	if d == 0 {
		return ucrypt.ErrInput
	}
	var qm Int
	qm.divDigitMag(x, d, rem)
	if x.Sign == Negative && *rem != 0 {
		qm.AddDigit(&qm, 1)
		*rem = Digit(Word(d) - Word(*rem))
	}
	if x.Sign == Negative {
		qm.FlipSign()
		if qm.IsZero() {
			qm.Sign = Positive
		}
	}
	q.Copy(&qm)
	return nil
}
