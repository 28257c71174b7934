package bignum

import "github.com/muukong/ucrypt"

// Exp sets z = x^y for a non-negative exponent y (spec.md §4.1.6). The
// unused multiplication on a zero bit is computed anyway, matching the
// square-and-multiply shape spec.md prescribes to reduce (not eliminate)
// the input-dependent timing signal of the branch; constant-time
// guarantees are explicitly not promised (spec.md §1).
func (z *Int) Exp(x, y *Int) error {
	if y.IsNegative() {
		return ucrypt.ErrInput
	}
	if y.IsZero() {
		z.SetUint64(1)
		return nil
	}

	result := NewFromUint64(1)
	for i := y.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		t := New()
		t.Mul(result, x)
		if bitAt(y, i) {
			result.Copy(t)
		}
	}
	if x.IsNegative() && y.IsOdd() {
		result.Sign = Negative
	}
	z.Copy(result)
	return nil
}

// ExpMod sets z = x^y mod m, 0 <= z < m for m > 0 (spec.md §4.1.6 "Modular
// exponentiation"). y must be non-negative; x is not required to already
// satisfy 0 <= x < m since every intermediate multiply is reduced.
func (z *Int) ExpMod(x, y, m *Int) error {
	if y.IsNegative() {
		return ucrypt.ErrInput
	}
	if m.IsZero() || m.IsNegative() {
		return ucrypt.ErrInput
	}

	result := NewFromUint64(1)
	if err := result.Mod(result, m); err != nil {
		return err
	}
	base := New()
	if err := base.Mod(x, m); err != nil {
		return err
	}

	if y.IsZero() {
		z.Copy(result)
		return nil
	}

	for i := y.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		if err := result.Mod(result, m); err != nil {
			return err
		}
		t := New()
		t.Mul(result, base)
		if err := t.Mod(t, m); err != nil {
			return err
		}
		if bitAt(y, i) {
			result.Copy(t)
		}
	}
	z.Copy(result)
	return nil
}

// bitAt reports bit i (0 = least significant) of the non-negative integer y.
func bitAt(y *Int, i int) bool {
	limbIdx := i / DigitBits
	bitIdx := uint(i % DigitBits)
	if limbIdx >= y.Used {
		return false
	}
	return (y.limbs[limbIdx]>>bitIdx)&1 == 1
}
