package sha

import (
	"hash"

	"github.com/muukong/ucrypt"
)

// Variant names one of the five supported hash algorithms. It is a closed
// tagged union, not an extension point: hmac and pbkdf2 take a Variant
// value rather than an arbitrary hash.Hash factory, mirroring the original
// project's fixed enum of hash identifiers.
type Variant int

const (
	SHA1 Variant = iota
	SHA224
	SHA256
	SHA384
	SHA512
)

// Hasher is the vocabulary every Digest type in this package satisfies,
// the spec's init/update/finalise/finalise-with-bits/output skeleton
// alongside hash.Hash.
type Hasher interface {
	hash.Hash
	Update(message []byte) error
	Finalise() error
	FinaliseWithBits(data byte, k int) error
	Output(result []byte) error
}

// New returns a freshly initialised digest for the given variant.
func New(v Variant) (Hasher, error) {
	switch v {
	case SHA1:
		return New1(), nil
	case SHA224:
		return New224(), nil
	case SHA256:
		return New256(), nil
	case SHA384:
		return New384(), nil
	case SHA512:
		return New512(), nil
	default:
		return nil, ucrypt.ErrInput
	}
}

// BlockSize returns the variant's block size in bytes without constructing
// a digest, used by hmac to size key normalisation.
func BlockSize(v Variant) (int, error) {
	switch v {
	case SHA1, SHA224, SHA256:
		return blockSize256, nil
	case SHA384, SHA512:
		return blockSize512, nil
	default:
		return 0, ucrypt.ErrInput
	}
}

// DigestSize returns the variant's output digest size in bytes.
func DigestSize(v Variant) (int, error) {
	switch v {
	case SHA1:
		return Size1, nil
	case SHA224:
		return Size224, nil
	case SHA256:
		return Size256, nil
	case SHA384:
		return Size384, nil
	case SHA512:
		return Size512, nil
	default:
		return 0, ucrypt.ErrInput
	}
}
