// Package hmac implements generic HMAC (spec.md §4.5) over any hash
// variant from package sha, grounded on the original project's
// sha_hmac.c: normalise the key to the hash's block length, derive the
// ipad/opad-masked keys lazily, and run two hash passes with an explicit
// reset between the inner and outer computation.
package hmac

import (
	"github.com/muukong/ucrypt"
	"github.com/muukong/ucrypt/sha"
)

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// Context holds the running state of one HMAC computation.
type Context struct {
	variant sha.Variant
	block   int
	digest  int
	key     []byte // normalised to block length
	inner   sha.Hasher
	state   sha.State
}

// New normalises key and prepares a Context ready for Update (spec.md §4.5
// steps 1-3).
func New(v sha.Variant, key []byte) (*Context, error) {
	block, err := sha.BlockSize(v)
	if err != nil {
		return nil, err
	}
	digestSize, err := sha.DigestSize(v)
	if err != nil {
		return nil, err
	}

	normalised, err := normaliseKey(v, key, block)
	if err != nil {
		return nil, err
	}

	c := &Context{variant: v, block: block, digest: digestSize, key: normalised}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// normaliseKey hashes the key down if it's longer than the block size,
// else zero-pads it on the right to the block size (spec.md §4.5 step 1).
func normaliseKey(v sha.Variant, key []byte, block int) ([]byte, error) {
	out := make([]byte, block)
	if len(key) > block {
		h, err := sha.New(v)
		if err != nil {
			return nil, err
		}
		if err := h.Update(key); err != nil {
			return nil, err
		}
		if err := h.Finalise(); err != nil {
			return nil, err
		}
		digest := make([]byte, h.Size())
		if err := h.Output(digest); err != nil {
			return nil, err
		}
		copy(out, digest)
		return out, nil
	}
	copy(out, key)
	return out, nil
}

func (c *Context) init() error {
	h, err := sha.New(c.variant)
	if err != nil {
		return err
	}
	ipad := maskedKey(c.key, ipadByte)
	if err := h.Update(ipad); err != nil {
		return err
	}
	c.inner = h
	c.state = sha.Accepting
	return nil
}

func maskedKey(key []byte, mask byte) []byte {
	out := make([]byte, len(key))
	for i, b := range key {
		out[i] = b ^ mask
	}
	return out
}

// Reset returns the context to a fresh accepting state using the same
// normalised key, without re-deriving it from the original password
// (spec.md §4.6 "the HMAC context is reset between blocks and between
// iterations").
func (c *Context) Reset() error {
	return c.init()
}

// Update feeds message bytes into the inner hash.
func (c *Context) Update(message []byte) error {
	if c.state != sha.Accepting {
		return ucrypt.ErrHashState
	}
	return c.inner.Update(message)
}

// Finalise closes the inner hash, resets a fresh context fed with opad and
// the inner digest, and closes that (spec.md §4.5 step 5).
func (c *Context) Finalise() error {
	if c.state != sha.Accepting {
		return ucrypt.ErrHashState
	}
	if err := c.inner.Finalise(); err != nil {
		return err
	}
	innerDigest := make([]byte, c.digest)
	if err := c.inner.Output(innerDigest); err != nil {
		return err
	}

	outer, err := sha.New(c.variant)
	if err != nil {
		return err
	}
	opad := maskedKey(c.key, opadByte)
	if err := outer.Update(opad); err != nil {
		return err
	}
	if err := outer.Update(innerDigest); err != nil {
		return err
	}
	if err := outer.Finalise(); err != nil {
		return err
	}
	c.inner = outer
	c.state = sha.Finalised
	return nil
}

// Output reads the outer digest (spec.md §4.5 step 6).
func (c *Context) Output(result []byte) error {
	if c.state != sha.Finalised {
		return ucrypt.ErrHashState
	}
	return c.inner.Output(result)
}

// Size returns the MAC's output length in bytes.
func (c *Context) Size() int { return c.digest }

// Sum computes HMAC(key, message) in one call, the convenience shape used
// by pbkdf2's PRF.
func Sum(v sha.Variant, key, message []byte) ([]byte, error) {
	c, err := New(v, key)
	if err != nil {
		return nil, err
	}
	if err := c.Update(message); err != nil {
		return nil, err
	}
	if err := c.Finalise(); err != nil {
		return nil, err
	}
	out := make([]byte, c.Size())
	if err := c.Output(out); err != nil {
		return nil, err
	}
	return out, nil
}
