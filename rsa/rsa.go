// Package rsa implements textbook (unpadded) RSA key generation, encrypt,
// and decrypt (spec.md §4.7), grounded on the original project's rsa.c:
// two probable primes sampled in [2^(nbits/2-1), 2^(nbits/2)), the fixed
// public exponent 65537, and the private exponent from the modular
// inverse of e mod phi(n). This is a primitive demonstrating the bignum
// and primality layers, not a padded encryption scheme.
package rsa

import (
	"github.com/muukong/ucrypt"
	"github.com/muukong/ucrypt/bignum"
	"github.com/muukong/ucrypt/prime"
)

// PublicExponent is the fixed RSA public exponent used by GenerateKey.
const PublicExponent = 65537

// PublicKey is the (e, n) pair used for encryption.
type PublicKey struct {
	E *bignum.Int
	N *bignum.Int
}

// PrivateKey is the (d, n) pair used for decryption.
type PrivateKey struct {
	D *bignum.Int
	N *bignum.Int
}

// GenerateKey produces an nBits-modulus RSA key pair (spec.md §4.7
// "Key-gen"). nBits must be even and at least 8 so each factor gets a
// nontrivial range.
func GenerateKey(nBits int) (*PublicKey, *PrivateKey, error) {
	if nBits < 8 || nBits%2 != 0 {
		return nil, nil, ucrypt.ErrInput
	}
	factorBits := nBits / 2

	lo := bignum.NewFromUint64(1)
	if err := lo.Lsh(lo, factorBits-1); err != nil {
		return nil, nil, err
	}
	hi := bignum.NewFromUint64(1)
	if err := hi.Lsh(hi, factorBits); err != nil {
		return nil, nil, err
	}

	p, err := prime.GenerateInRange(lo, hi, false)
	if err != nil {
		return nil, nil, err
	}
	q, err := prime.GenerateInRange(lo, hi, false)
	if err != nil {
		return nil, nil, err
	}

	n := bignum.New()
	n.Mul(p, q)

	pMinus1 := bignum.New()
	pMinus1.SubDigit(p, 1)
	qMinus1 := bignum.New()
	qMinus1.SubDigit(q, 1)

	phi := bignum.New()
	phi.Mul(pMinus1, qMinus1)

	e := bignum.NewFromUint64(PublicExponent)
	d := bignum.New()
	// gcd(e, phi) != 1 is possible for small factorBits; this textbook
	// primitive reports ErrInput rather than resampling p, q.
	if err := d.ModInverse(e, phi); err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{E: e, N: n}
	priv := &PrivateKey{D: d, N: n.Clone()}
	return pub, priv, nil
}

// Encrypt computes c = m^e mod n for 0 <= m < n (spec.md §4.7 "Encrypt").
func Encrypt(m *bignum.Int, pub *PublicKey) (*bignum.Int, error) {
	if m.IsNegative() || !m.Lt(pub.N) {
		return nil, ucrypt.ErrInput
	}
	c := bignum.New()
	if err := c.ExpMod(m, pub.E, pub.N); err != nil {
		return nil, err
	}
	return c, nil
}

// Decrypt computes m = c^d mod n for 0 <= c < n (spec.md §4.7 "Decrypt").
func Decrypt(c *bignum.Int, priv *PrivateKey) (*bignum.Int, error) {
	if c.IsNegative() || !c.Lt(priv.N) {
		return nil, ucrypt.ErrInput
	}
	m := bignum.New()
	if err := m.ExpMod(c, priv.D, priv.N); err != nil {
		return nil, err
	}
	return m, nil
}
