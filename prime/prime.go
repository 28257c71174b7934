// Package prime implements trial division and Miller-Rabin primality
// testing (spec.md §4.3), grounded on the original project's prime.c: the
// same 31-entry small-primes table, the same bit-length-indexed
// average-case round-count schedule, and the same "safe" override pinning
// t = 60.
package prime

import (
	"github.com/muukong/ucrypt"
	"github.com/muukong/ucrypt/bigrand"
	"github.com/muukong/ucrypt/bignum"
)

// trialPrimes is the fixed small-primes table used for trial division; the
// largest entry (127) fits in a single limb, enabling the fast
// division-by-digit path.
var trialPrimes = []bignum.Digit{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
	59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
}

// trialResult is the three-way verdict trial division can reach (spec.md
// §4.3 "Trial division").
type trialResult int

const (
	trialComposite trialResult = iota
	trialPrime
	trialInconclusive
)

// trialDivide runs trial division against the small-primes table: equal
// to a table entry is definitely prime, divisible by one (and not equal)
// is definitely composite, otherwise inconclusive. Even candidates other
// than 2, non-positive candidates, and one, are composite immediately.
func trialDivide(x *bignum.Int) (trialResult, error) {
	if !x.IsPositive() || x.IsOne() {
		return trialComposite, nil
	}
	if x.IsEven() {
		if x.Eq(bignum.NewFromUint64(2)) {
			return trialPrime, nil
		}
		return trialComposite, nil
	}
	for _, p := range trialPrimes {
		if x.Eq(bignum.NewFromUint64(uint64(p))) {
			return trialPrime, nil
		}
		var r bignum.Digit
		q := bignum.New()
		if err := q.DivDigit(x, p, &r); err != nil {
			return trialComposite, err
		}
		if r == 0 {
			return trialComposite, nil
		}
	}
	return trialInconclusive, nil
}

// TrialDivision reports whether x survives trial division (spec.md §4.3):
// true if x is a table prime or inconclusive (the caller should proceed to
// Miller-Rabin), false if a table entry evenly divides x.
func TrialDivision(x *bignum.Int) bool {
	res, err := trialDivide(x)
	return err == nil && res != trialComposite
}

// millerRabinRoundsUnsafe returns the average-case round count for an
// n-bit candidate targeting a 2^-80 error rate (spec.md §4.3 "Combined
// is-prime"); not adversarially safe (spec.md §9).
func millerRabinRoundsUnsafe(n int) int {
	switch {
	case n >= 1300:
		return 2
	case n >= 850:
		return 3
	case n >= 650:
		return 4
	case n >= 550:
		return 5
	case n >= 450:
		return 6
	case n >= 400:
		return 7
	case n >= 350:
		return 8
	case n >= 300:
		return 9
	case n >= 250:
		return 12
	case n >= 200:
		return 15
	case n >= 150:
		return 18
	default:
		return 60
	}
}

// MillerRabin runs t Miller-Rabin rounds against n (spec.md §4.3
// "Miller-Rabin"). n must be odd and greater than 3, so that the witness
// range [2, n-1) is non-empty.
func MillerRabin(n *bignum.Int, t int) (bool, error) {
	nMinus1 := bignum.New()
	nMinus1.SubDigit(n, 1)

	d := nMinus1.Clone()
	r := 0
	for d.IsEven() {
		r++
		if err := d.Rsh(d, 1); err != nil {
			return false, err
		}
	}

	two := bignum.NewFromUint64(2)

rounds:
	for i := 0; i < t; i++ {
		a := bignum.New()
		if err := bigrand.UniformRange(a, two, nMinus1); err != nil {
			return false, err
		}

		x := bignum.New()
		if err := x.ExpMod(a, d, n); err != nil {
			return false, err
		}
		if x.IsOne() || x.Eq(nMinus1) {
			continue rounds
		}

		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			if err := x.Mod(x, n); err != nil {
				return false, err
			}
			if x.Eq(nMinus1) {
				continue rounds
			}
		}
		return false, nil
	}
	return true, nil
}

// IsPrime runs trial division, then (if inconclusive) Miller-Rabin with a
// round count chosen by bit length, or t = 60 when safe is true (spec.md
// §4.3 "Combined is-prime").
func IsPrime(x *bignum.Int, safe bool) (bool, error) {
	res, err := trialDivide(x)
	if err != nil {
		return false, err
	}
	switch res {
	case trialComposite:
		return false, nil
	case trialPrime:
		return true, nil
	}

	t := millerRabinRoundsUnsafe(x.BitLen())
	if safe {
		t = 60
	}
	return MillerRabin(x, t)
}

// GenerateInRange samples a probable prime uniformly in [lo, hi), the
// uc_gen_rand_prime step rsa.c's key generation calls: rand.c's
// uc_rand_int_range plus a repeated primality-test loop, recovered here
// as its own entry point rather than inlined into rsa.GenerateKey.
func GenerateInRange(lo, hi *bignum.Int, safe bool) (*bignum.Int, error) {
	if !lo.Lt(hi) {
		return nil, ucrypt.ErrInput
	}
	for {
		candidate := bignum.New()
		if err := bigrand.UniformRange(candidate, lo, hi); err != nil {
			return nil, err
		}
		if candidate.IsEven() {
			candidate.AddDigit(candidate, 1)
			if candidate.Gte(hi) {
				continue
			}
		}
		ok, err := IsPrime(candidate, safe)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}
