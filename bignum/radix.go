package bignum

import (
	"strings"

	"github.com/muukong/ucrypt"
)

const digitChars = "0123456789ABCDEF"

// ReadRadix parses s (optional leading '+'/'-', digits '0-9A-Fa-f',
// case-insensitive) in the given radix (2..16) into x (spec.md §4.1.9
// "Read"). "+0"/"-0" both parse to positive zero.
func (x *Int) ReadRadix(s string, radix int) error {
	if err := checkRadix(radix); err != nil {
		return err
	}
	if s == "" {
		return ucrypt.ErrInput
	}

	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i >= len(s) {
		return ucrypt.ErrInput
	}

	acc := New()
	base := NewFromUint64(uint64(radix))
	digit := New()
	for ; i < len(s); i++ {
		v := digitValue(s[i])
		if v < 0 || v >= radix {
			return ucrypt.ErrInput
		}
		digit.SetDigit(Digit(v))
		acc.Mul(acc, base)
		acc.Add(acc, digit)
	}

	acc.Sign = Positive
	if neg && !acc.IsZero() {
		acc.Sign = Negative
	}
	x.Copy(acc)
	return nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// WriteRadix formats x in the given radix (2..16), most significant digit
// first, with a leading '-' for negative values (spec.md §4.1.9 "Write").
func (x *Int) WriteRadix(radix int) (string, error) {
	if err := checkRadix(radix); err != nil {
		return "", err
	}
	if x.IsZero() {
		return "0", nil
	}

	var sb strings.Builder
	t := x.Clone()
	t.Sign = Positive
	var rem Digit
	var digits []byte
	for !t.IsZero() {
		var q Int
		q.DivDigit(t, Digit(radix), &rem)
		digits = append(digits, digitChars[rem])
		t = &q
	}
	if x.IsNegative() {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String(), nil
}

// WriteLength returns an upper bound (in characters, including a slack
// digit but not a trailing NUL) on the length of WriteRadix's output for x
// in the given radix (spec.md §4.1.9 "Write-length").
func (x *Int) WriteLength(radix int) (int, error) {
	if err := checkRadix(radix); err != nil {
		return 0, err
	}
	length := 1 // one character minimum, covers x == 0
	if x.IsNegative() {
		length++
	}
	mag := abs(x)
	if !mag.IsZero() {
		running := NewFromUint64(uint64(radix))
		base := NewFromUint64(uint64(radix))
		digits := 1
		for running.Lte(mag) {
			digits++
			running.Mul(running, base)
		}
		length += digits - 1
	}
	return length + 1, nil // one slack digit
}

// ReadLSBBytes sets x from the bit-level little-endian encoding of spec.md
// §4.1.9/§6 "Integer bytes": bit i of byte i/8 (LSB-first-in-byte) is bit i
// of the magnitude. Sign is a separate attribute and is always set to
// Positive by this constructor, matching the "magnitude only" contract.
func (x *Int) ReadLSBBytes(b []byte) {
	x.SetZero()
	if len(b) == 0 {
		return
	}
	need := (len(b)*8)/DigitBits + 1
	x.grow(need)
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	nbits := 8 * len(b)
	for i := 0; i < nbits; i++ {
		bitVal := (b[i/8] >> uint(i%8)) & 1
		if bitVal == 0 {
			continue
		}
		limbIdx := i / DigitBits
		bitIdx := uint(i % DigitBits)
		x.limbs[limbIdx] |= Digit(bitVal) << bitIdx
	}
	x.Used = len(x.limbs)
	x.clamp()
}

// WriteLSBBytes returns the bit-level little-endian encoding matching
// ReadLSBBytes, padded to at least minBytes bytes.
func (x *Int) WriteLSBBytes(minBytes int) []byte {
	nbits := x.BitLen()
	nbytes := (nbits + 7) / 8
	if nbytes < minBytes {
		nbytes = minBytes
	}
	if nbytes == 0 {
		nbytes = 1
	}
	out := make([]byte, nbytes)
	for i := 0; i < x.Used*DigitBits; i++ {
		limbIdx := i / DigitBits
		bitIdx := uint(i % DigitBits)
		if (x.limbs[limbIdx]>>bitIdx)&1 == 0 {
			continue
		}
		byteIdx := i / 8
		if byteIdx >= len(out) {
			continue
		}
		out[byteIdx] |= 1 << uint(i%8)
	}
	return out
}
