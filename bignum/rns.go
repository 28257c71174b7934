package bignum

import "github.com/muukong/ucrypt"

// mulMulti returns the product of all xs (spec.md §4.1.8 "Products are
// formed by a variadic mul_multi").
func mulMulti(xs ...*Int) *Int {
	out := NewFromUint64(1)
	for _, x := range xs {
		out.Mul(out, x)
	}
	return out
}

// IntToRNS converts x into its residues modulo each of moduli, a coprime
// moduli vector, using the divide-and-conquer scheme from spec.md §4.1.8:
// base cases k=1 and k=2 reduce directly, the recursive case splits the
// moduli in half and recurses on each half against x reduced by that
// half's product.
func IntToRNS(x *Int, moduli []*Int) ([]*Int, error) {
	if len(moduli) == 0 {
		return nil, ucrypt.ErrInput
	}
	return intToRNS(x, moduli)
}

func intToRNS(x *Int, moduli []*Int) ([]*Int, error) {
	switch len(moduli) {
	case 1:
		r := New()
		if err := r.Mod(x, moduli[0]); err != nil {
			return nil, err
		}
		return []*Int{r}, nil
	case 2:
		r0, r1 := New(), New()
		if err := r0.Mod(x, moduli[0]); err != nil {
			return nil, err
		}
		if err := r1.Mod(x, moduli[1]); err != nil {
			return nil, err
		}
		return []*Int{r0, r1}, nil
	default:
		mid := len(moduli) / 2
		left, right := moduli[:mid], moduli[mid:]

		mLeft := mulMulti(left...)
		mRight := mulMulti(right...)

		xLeft, xRight := New(), New()
		if err := xLeft.Mod(x, mLeft); err != nil {
			return nil, err
		}
		if err := xRight.Mod(x, mRight); err != nil {
			return nil, err
		}

		resLeft, err := intToRNS(xLeft, left)
		if err != nil {
			return nil, err
		}
		resRight, err := intToRNS(xRight, right)
		if err != nil {
			return nil, err
		}
		return append(resLeft, resRight...), nil
	}
}

// RNSToInt reconstructs the integer represented by residues (taken modulo
// the matching entries of moduli) via recursive CRT combination (spec.md
// §4.1.8 "RNS -> Int"). The result is in [0, product(moduli)).
func RNSToInt(residues []*Int, moduli []*Int) (*Int, error) {
	if len(residues) != len(moduli) || len(moduli) == 0 {
		return nil, ucrypt.ErrInput
	}
	return rnsToInt(residues, moduli)
}

func rnsToInt(residues, moduli []*Int) (*Int, error) {
	if len(moduli) == 1 {
		return residues[0].Clone(), nil
	}

	mid := len(moduli) / 2
	leftM, rightM := moduli[:mid], moduli[mid:]
	leftR, rightR := residues[:mid], residues[mid:]

	x1, err := rnsToInt(leftR, leftM)
	if err != nil {
		return nil, err
	}
	x2, err := rnsToInt(rightR, rightM)
	if err != nil {
		return nil, err
	}

	m1 := mulMulti(leftM...)
	m2 := mulMulti(rightM...)

	g, u, v := ExtGcd(m1, m2)
	if !g.IsOne() {
		return nil, ucrypt.ErrInput
	}
	// u*m1 + v*m2 = 1; normalise both coefficients to be non-negative.
	m1m2 := New()
	m1m2.Mul(m1, m2)
	u = reduceSigned(u, m2)
	v = reduceSigned(v, m1)

	// x = (u*x2*m1 + v*x1*m2) mod (m1*m2)
	t1 := New()
	t1.Mul(u, x2)
	t1.Mul(t1, m1)
	t2 := New()
	t2.Mul(v, x1)
	t2.Mul(t2, m2)

	sum := New()
	sum.Add(t1, t2)

	result := New()
	if err := result.Mod(sum, m1m2); err != nil {
		return nil, err
	}
	// A single conditional subtraction suffices beyond that (spec.md
	// §4.1.8), already covered by Mod's general reduction above.
	return result, nil
}
