// Package bignum implements the multi-precision integer core: a densely
// packed limb representation with a sub-word radix, carry/borrow tracking
// across variable-width digits, schoolbook and Comba multiplication,
// normalised long division, and the number-theoretic routines layered on
// top of them.
package bignum

// Digit holds one limb: DigitBits meaningful low bits plus room for a carry
// bit. Word is the double-width type used to accumulate a single-limb
// product or a carry-propagating sum without overflow.
//
// The limb width is a compile-time profile (spec.md §3); this build uses
// the 32-bit profile (28 usable bits, 64-bit double word), the one real
// deployments of the original C project use. The 7-bit profile is a toy
// width useful only for hand-tracing the algorithms and is not carried
// forward here.
type Digit = uint32
type Word = uint64

const (
	// DigitBits is the number of meaningful bits per limb.
	DigitBits = 28
	// Base is 2^DigitBits, the radix of the representation.
	Base Word = 1 << DigitBits
	// DigitMask clears everything above the low DigitBits bits of a Digit.
	DigitMask Digit = (1 << DigitBits) - 1
	// WordMask clears everything above the low DigitBits bits of a Word.
	WordMask Word = Base - 1

	// CombaMaxDigits bounds the operand length (in digits) for which the
	// Comba multiplier is safe: each column accumulates up to
	// CombaMaxDigits partial products of (DigitBits)-bit values, and the
	// running sum must still fit in a Word (2*DigitBits+1 bits genuinely
	// available, but we leave headroom for the running accumulation across
	// the whole column rather than just one term).
	CombaMaxDigits = 1 << (64 - 2*DigitBits)
)
