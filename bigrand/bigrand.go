// Package bigrand samples uniformly distributed bignum.Int values from the
// operating system's entropy source. It wraps crypto/rand.Reader, which
// already implements the "fill a buffer with cryptographically secure
// random bytes, blocking briefly as needed, failing on exhaustion" contract
// spec.md §4.2 asks an RNG byte routine to satisfy (the original wraps
// Linux getrandom(2) with its own retry loop; Reader's Read already retries
// internally, so there is nothing left for this package to loop).
package bigrand

import (
	"crypto/rand"

	"github.com/muukong/ucrypt"
	"github.com/muukong/ucrypt/bignum"
)

// Bytes fills buf with cryptographically secure random bytes (spec.md §4.2
// "Bytes").
func Bytes(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return ucrypt.ErrRNG
	}
	return nil
}

// Digit returns a single random limb masked to bignum.DigitBits bits
// (spec.md §4.2 "Digit").
func Digit() (bignum.Digit, error) {
	var buf [4]byte
	if err := Bytes(buf[:]); err != nil {
		return 0, err
	}
	d := bignum.Digit(buf[0]) | bignum.Digit(buf[1])<<8 | bignum.Digit(buf[2])<<16 | bignum.Digit(buf[3])<<24
	return d & bignum.DigitMask, nil
}

// UniformBasePow samples x uniformly in [0, Base^k) for k >= 1 by filling k
// limbs independently with random digits (spec.md §4.2 "Uniform in
// [0, B^k)").
func UniformBasePow(x *bignum.Int, k int) error {
	if k < 1 {
		return ucrypt.ErrInput
	}
	digits := make([]bignum.Digit, k)
	for i := range digits {
		d, err := Digit()
		if err != nil {
			return err
		}
		digits[i] = d
	}
	x.SetFromDigits(digits)
	return nil
}

// Uniform samples x uniformly in [0, b) for b > 0 using rejection sampling:
// find the smallest base power Base^k >= b, compute the largest multiple
// b' of b below Base^k, resample in [0, Base^k) until below b', then reduce
// mod b (spec.md §4.2 "Uniform in [0, b)"). Expected iteration count is at
// most 2.
func Uniform(x *bignum.Int, b *bignum.Int) error {
	if !b.IsPositive() {
		return ucrypt.ErrInput
	}

	basePower := bignum.NewFromUint64(1)
	k := 0
	for basePower.Lt(b) {
		if err := basePower.Lsh(basePower, bignum.DigitBits); err != nil {
			return err
		}
		k++
	}
	if k == 0 {
		k = 1
		if err := basePower.Lsh(bignum.NewFromUint64(1), bignum.DigitBits); err != nil {
			return err
		}
	}

	rem := bignum.New()
	if err := rem.Mod(basePower, b); err != nil {
		return err
	}
	bPrime := bignum.New()
	bPrime.Sub(basePower, rem)

	for {
		if err := UniformBasePow(x, k); err != nil {
			return err
		}
		if x.Lt(bPrime) {
			break
		}
	}
	return x.Mod(x, b)
}

// UniformRange samples x uniformly in [a, b) for a < b (spec.md §4.2
// "Uniform in [a, b)").
func UniformRange(x *bignum.Int, a, b *bignum.Int) error {
	if !a.Lt(b) {
		return ucrypt.ErrInput
	}
	span := bignum.New()
	span.Sub(b, a)
	if err := Uniform(x, span); err != nil {
		return err
	}
	x.Add(x, a)
	return nil
}
