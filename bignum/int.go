package bignum

import (
	"fmt"

	"github.com/muukong/ucrypt"
)

// Sign records whether an Int's magnitude should be read as positive or
// negative. Zero is always Positive (spec.md §3 invariant 4).
type Sign bool

const (
	Positive Sign = false
	Negative Sign = true
)

// Int is an arbitrary-precision integer: a little-endian limb vector plus a
// sign flag. The zero value is not ready for use; call one of the New*
// constructors, or rely on the fact that every operation in this package
// grows its destination operand as needed from an uninitialised Int{}.
//
// Invariants (spec.md §3), maintained after every exported operation
// returns successfully:
//  1. Used >= 1.
//  2. Used > 1 implies limbs[Used-1] != 0 (clamped).
//  3. Every limb in [0, cap(limbs)) holds at most DigitBits bits.
//  4. Sign == Negative implies the value is strictly nonzero.
//  5. Limbs at indices [Used, cap(limbs)) are zero.
type Int struct {
	limbs []Digit
	Used  int
	Sign  Sign
}

// New returns a freshly initialised zero-valued Int.
func New() *Int {
	x := &Int{}
	x.grow(1)
	x.Used = 1
	return x
}

// NewFromInt64 returns an Int initialised from a signed 64-bit value.
func NewFromInt64(n int64) *Int {
	x := New()
	x.SetInt64(n)
	return x
}

// NewFromUint64 returns an Int initialised from an unsigned 64-bit value.
func NewFromUint64(n uint64) *Int {
	x := New()
	x.SetUint64(n)
	return x
}

// grow ensures x has capacity for at least n limbs, zeroing any newly
// allocated limbs and preserving Used (spec.md §4.1 "Grow").
func (x *Int) grow(n int) {
	if n < 0 {
		n = 0
	}
	if cap(x.limbs) >= n {
		// Extend the zeroed tail into view without touching already-live limbs.
		for len(x.limbs) < n {
			x.limbs = append(x.limbs, 0)
		}
		return
	}
	grown := make([]Digit, n)
	copy(grown, x.limbs)
	x.limbs = grown
}

// clamp restores invariant 2: while Used > 1 and the top limb is zero,
// shrink Used.
func (x *Int) clamp() {
	for x.Used > 1 && x.limbs[x.Used-1] == 0 {
		x.Used--
	}
	if x.Used < 1 {
		x.Used = 1
	}
}

// limb returns digit i of x, or 0 if i is out of range, convenient for the
// division/RNS code, which frequently indexes one past the end.
func (x *Int) limb(i int) Digit {
	if i < 0 || i >= x.Used {
		return 0
	}
	return x.limbs[i]
}

// SetZero resets x to the zero value in place.
func (x *Int) SetZero() {
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	if len(x.limbs) == 0 {
		x.grow(1)
	}
	x.Used = 1
	x.Sign = Positive
}

// SetInt64 sets x to n, little-endian limb packing of |n| with Sign from
// n's sign (spec.md §4.1 "Set-from-primitive").
func (x *Int) SetInt64(n int64) {
	neg := n < 0
	var u uint64
	if neg {
		u = uint64(-(n + 1)) + 1 // avoid overflow on math.MinInt64
	} else {
		u = uint64(n)
	}
	x.SetUint64(u)
	if neg && !x.IsZero() {
		x.Sign = Negative
	}
}

// SetUint64 sets x to the unsigned value n.
func (x *Int) SetUint64(n uint64) {
	need := 1
	for t := n; t >= uint64(Base); t >>= DigitBits {
		need++
	}
	x.grow(need)
	for i := 0; i < need; i++ {
		x.limbs[i] = Digit(n & uint64(DigitMask))
		n >>= DigitBits
	}
	for i := need; i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.Used = need
	x.Sign = Positive
	x.clamp()
}

// SetDigit sets x to the single non-negative limb value d.
func (x *Int) SetDigit(d Digit) {
	x.grow(1)
	x.limbs[0] = d & DigitMask
	for i := 1; i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.Used = 1
	x.Sign = Positive
}

// SetFromDigits sets x directly from a little-endian slice of already-valid
// limbs (each assumed < Base), as used by bigrand's base-power sampler to
// install freshly drawn random digits without re-deriving them through
// arithmetic.
func (x *Int) SetFromDigits(digits []Digit) {
	if len(digits) == 0 {
		x.SetZero()
		return
	}
	x.grow(len(digits))
	copy(x.limbs, digits)
	for i := len(digits); i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.Used = len(digits)
	x.Sign = Positive
	x.clamp()
}

// SetBytes sets x from a big-endian byte slice (magnitude only, always
// non-negative), the conventional byte encoding used at RSA/PBKDF2
// boundaries. See ReadLSBBytes for the bit-level little-endian encoding
// specified by spec.md §4.1.9/§6 "Integer bytes".
func (x *Int) SetBytes(b []byte) {
	x.SetZero()
	base := NewFromUint64(256)
	digit := New()
	for _, by := range b {
		digit.SetUint64(uint64(by))
		x.Mul(x, base)
		x.Add(x, digit)
	}
}

// Bytes returns the big-endian magnitude encoding of x, with no leading
// zero byte (except for the value zero, which encodes as a single 0x00).
func (x *Int) Bytes() []byte {
	if x.IsZero() {
		return []byte{0}
	}
	t := New()
	t.Copy(x)
	t.Sign = Positive
	var out []byte
	base := NewFromUint64(256)
	q, r := New(), New()
	for !t.IsZero() {
		q.Div(r, t, base)
		out = append(out, byte(r.limbs[0]))
		t.Copy(q)
	}
	// reverse into big-endian
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Copy sets x equal to y, growing x as needed. Aliasing x == y is a no-op.
func (x *Int) Copy(y *Int) {
	if x == y {
		return
	}
	x.grow(y.Used)
	copy(x.limbs, y.limbs[:y.Used])
	for i := y.Used; i < len(x.limbs); i++ {
		x.limbs[i] = 0
	}
	x.Used = y.Used
	x.Sign = y.Sign
}

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int {
	c := New()
	c.Copy(x)
	return c
}

// Release zeroes every limb (defensive erasure, spec.md §9 "Secure
// erasure") and drops the backing storage. x is left in the same state
// New would produce.
func (x *Int) Release() {
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	x.limbs = nil
	x.Used = 0
	x.Sign = Positive
	x.grow(1)
	x.Used = 1
}

// IsZero reports whether x is the value zero.
func (x *Int) IsZero() bool {
	return x.Used == 1 && x.limbs[0] == 0
}

// IsPositive reports whether x is strictly positive.
func (x *Int) IsPositive() bool {
	return x.Sign == Positive && !x.IsZero()
}

// IsNegative reports whether x is strictly negative.
func (x *Int) IsNegative() bool {
	return x.Sign == Negative
}

// IsOdd reports whether x is odd.
func (x *Int) IsOdd() bool {
	return x.limbs[0]&1 == 1
}

// IsEven reports whether x is even.
func (x *Int) IsEven() bool {
	return !x.IsOdd()
}

// IsOne reports whether x equals 1.
func (x *Int) IsOne() bool {
	return x.Used == 1 && x.limbs[0] == 1 && x.Sign == Positive
}

// FlipSign negates x's sign in place. Zero's sign is always Positive and is
// left untouched.
func (x *Int) FlipSign() {
	if x.IsZero() {
		return
	}
	x.Sign = !x.Sign
}

// Abs sets x to |y|.
func (x *Int) Abs(y *Int) {
	x.Copy(y)
	x.Sign = Positive
}

// Neg sets x to -y.
func (x *Int) Neg(y *Int) {
	x.Copy(y)
	x.FlipSign()
}

// BitLen returns the number of bits in the magnitude of x (0 for zero).
func (x *Int) BitLen() int {
	if x.IsZero() {
		return 0
	}
	top := x.limbs[x.Used-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (x.Used-1)*DigitBits + bits
}

// CmpMag compares |x| and |y|, returning -1, 0, or 1 (spec.md §4.1.1).
func (x *Int) CmpMag(y *Int) int {
	if x.Used != y.Used {
		if x.Used < y.Used {
			return -1
		}
		return 1
	}
	for i := x.Used - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y as signed values, returning -1, 0, or 1.
func (x *Int) Cmp(y *Int) int {
	if x.Sign != y.Sign {
		if x.Sign == Negative {
			return -1
		}
		return 1
	}
	if x.Sign == Negative {
		return y.CmpMag(x)
	}
	return x.CmpMag(y)
}

func (x *Int) Eq(y *Int) bool  { return x.Cmp(y) == 0 }
func (x *Int) Lt(y *Int) bool  { return x.Cmp(y) < 0 }
func (x *Int) Lte(y *Int) bool { return x.Cmp(y) <= 0 }
func (x *Int) Gt(y *Int) bool  { return x.Cmp(y) > 0 }
func (x *Int) Gte(y *Int) bool { return x.Cmp(y) >= 0 }

// String renders x in base 10 (see radix.go for WriteRadix's general form).
func (x *Int) String() string {
	s, err := x.WriteRadix(10)
	if err != nil {
		return fmt.Sprintf("<bignum.Int invalid: %v>", err)
	}
	return s
}

// checkRadix validates that radix is in the supported [2,16] range.
func checkRadix(radix int) error {
	if radix < 2 || radix > 16 {
		return ucrypt.ErrInput
	}
	return nil
}
