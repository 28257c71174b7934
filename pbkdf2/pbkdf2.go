// Package pbkdf2 implements PBKDF2 key derivation (spec.md §4.6, RFC 2898
// §5.2) over the generic HMAC in package hmac, grounded on the original
// project's pbkdf2.c: split the derived key into l whole blocks plus an
// r-byte remainder, compute each block's U_1..U_c chain with the HMAC
// context reset between iterations, and XOR the chain incrementally into
// a scratch buffer.
package pbkdf2

import (
	"encoding/binary"

	"github.com/muukong/ucrypt"
	"github.com/muukong/ucrypt/hmac"
	"github.com/muukong/ucrypt/sha"
)

// Key derives a dkLen-byte key from password and salt using iterCount
// rounds of HMAC-variant as the PRF.
func Key(variant sha.Variant, password, salt []byte, iterCount, dkLen int) ([]byte, error) {
	if iterCount < 1 || dkLen < 1 {
		return nil, ucrypt.ErrInput
	}

	hLen, err := sha.DigestSize(variant)
	if err != nil {
		return nil, err
	}

	l := (dkLen + hLen - 1) / hLen
	r := dkLen - (l-1)*hLen

	dk := make([]byte, dkLen)
	for i := 1; i <= l; i++ {
		blockLen := hLen
		if i == l {
			blockLen = r
		}
		block, err := blockF(variant, password, salt, iterCount, i)
		if err != nil {
			return nil, err
		}
		copy(dk[(i-1)*hLen:], block[:blockLen])
	}
	return dk, nil
}

// blockF computes T_i = U_1 XOR U_2 XOR ... XOR U_c (spec.md §4.6 step 2),
// resetting the HMAC context between the initial block and every
// subsequent iteration.
func blockF(variant sha.Variant, password, salt []byte, c, i int) ([]byte, error) {
	ctx, err := hmac.New(variant, password)
	if err != nil {
		return nil, err
	}

	var iOctets [4]byte
	binary.BigEndian.PutUint32(iOctets[:], uint32(i))

	u, err := hmacOnce(ctx, salt, iOctets[:])
	if err != nil {
		return nil, err
	}

	f := make([]byte, len(u))
	copy(f, u)

	for t := 2; t <= c; t++ {
		if err := ctx.Reset(); err != nil {
			return nil, err
		}
		u, err = hmacOnce(ctx, u)
		if err != nil {
			return nil, err
		}
		for j := range f {
			f[j] ^= u[j]
		}
	}

	return f, nil
}

// hmacOnce feeds parts into ctx, finalises it, and returns the digest.
func hmacOnce(ctx *hmac.Context, parts ...[]byte) ([]byte, error) {
	for _, p := range parts {
		if err := ctx.Update(p); err != nil {
			return nil, err
		}
	}
	if err := ctx.Finalise(); err != nil {
		return nil, err
	}
	out := make([]byte, ctx.Size())
	if err := ctx.Output(out); err != nil {
		return nil, err
	}
	return out, nil
}
