package bignum

import "github.com/muukong/ucrypt"

// LshDigits sets x = y * Base^n, shifting by n whole limbs (spec.md §4.1.5).
func (x *Int) LshDigits(y *Int, n int) error {
	if n < 0 {
		return ucrypt.ErrInput
	}
	if n == 0 {
		x.Copy(y)
		return nil
	}
	if y.IsZero() {
		x.SetZero()
		return nil
	}
	var tmp Int
	tmp.grow(y.Used + n)
	tmp.Used = y.Used + n
	for i := 0; i < n; i++ {
		tmp.limbs[i] = 0
	}
	copy(tmp.limbs[n:n+y.Used], y.limbs[:y.Used])
	tmp.Sign = y.Sign
	tmp.clamp()
	x.Copy(&tmp)
	return nil
}

// RshDigits sets x = y / Base^n, shifting by n whole limbs, discarding the
// low n limbs.
func (x *Int) RshDigits(y *Int, n int) error {
	if n < 0 {
		return ucrypt.ErrInput
	}
	if n == 0 {
		x.Copy(y)
		return nil
	}
	if n >= y.Used {
		x.SetZero()
		return nil
	}
	var tmp Int
	tmp.grow(y.Used - n)
	tmp.Used = y.Used - n
	copy(tmp.limbs[:tmp.Used], y.limbs[n:y.Used])
	tmp.Sign = y.Sign
	tmp.clamp()
	x.Copy(&tmp)
	return nil
}

// Lsh sets x = y << n bits, n >= 0 (spec.md §4.1.5). Splits n into a
// whole-limb shift and a sub-limb bit shift applied with a sliding window
// across adjacent limbs.
func (x *Int) Lsh(y *Int, n int) error {
	if n < 0 {
		return ucrypt.ErrInput
	}
	if n == 0 {
		x.Copy(y)
		return nil
	}
	if y.IsZero() {
		x.SetZero()
		return nil
	}
	wholeLimbs := n / DigitBits
	bits := n % DigitBits

	var shifted Int
	if err := shifted.LshDigits(y, wholeLimbs); err != nil {
		return err
	}
	if bits == 0 {
		x.Copy(&shifted)
		return nil
	}

	var tmp Int
	tmp.grow(shifted.Used + 1)
	tmp.Used = shifted.Used + 1
	var carry Digit
	for i := 0; i < shifted.Used; i++ {
		v := Word(shifted.limbs[i])
		out := Digit((v<<uint(bits))&WordMask) | carry
		carry = Digit(v >> uint(DigitBits-bits))
		tmp.limbs[i] = out
	}
	tmp.limbs[shifted.Used] = carry
	tmp.Sign = y.Sign
	tmp.clamp()
	x.Copy(&tmp)
	return nil
}

// Rsh sets x = y >> n bits, n >= 0. Never grows capacity.
func (x *Int) Rsh(y *Int, n int) error {
	if n < 0 {
		return ucrypt.ErrInput
	}
	if n == 0 {
		x.Copy(y)
		return nil
	}
	if y.IsZero() {
		x.SetZero()
		return nil
	}
	wholeLimbs := n / DigitBits
	bits := n % DigitBits

	var shifted Int
	if err := shifted.RshDigits(y, wholeLimbs); err != nil {
		return err
	}
	if bits == 0 {
		x.Copy(&shifted)
		return nil
	}

	var tmp Int
	tmp.grow(shifted.Used)
	tmp.Used = shifted.Used
	for i := 0; i < shifted.Used; i++ {
		lo := Word(shifted.limbs[i]) >> uint(bits)
		var hi Word
		if i+1 < shifted.Used {
			hi = (Word(shifted.limbs[i+1]) << uint(DigitBits-bits)) & WordMask
		}
		tmp.limbs[i] = Digit(lo | hi)
	}
	tmp.Sign = shifted.Sign
	tmp.clamp()
	if tmp.IsZero() {
		tmp.Sign = Positive
	}
	x.Copy(&tmp)
	return nil
}
