package sha

import (
	"encoding/binary"

	"github.com/muukong/ucrypt"
)

const (
	blockSize1 = 64
	Size1      = 20
)

var iv1 = [5]uint32{
	0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
}

var k1 = [4]uint32{
	0x5a827999, // 0 <= t < 20
	0x6ed9eba1, // 20 <= t < 40
	0x8f1bbcdc, // 40 <= t < 60
	0xca62c1d6, // 60 <= t < 80
}

// Digest1 is the SHA-1 engine: same byte-buffering/padding skeleton as
// Digest256, a different round function (Ch/Parity/Maj selected by round
// index rather than Sigma-mixed) and 80 rounds instead of 64.
type Digest1 struct {
	h          [5]uint32
	block      [blockSize1]byte
	index      int
	lengthBits uint64
	state      State
}

// New1 returns a freshly initialised SHA-1 digest.
func New1() *Digest1 {
	d := &Digest1{}
	d.Reset()
	return d
}

func (d *Digest1) Reset() {
	d.h = iv1
	for i := range d.block {
		d.block[i] = 0
	}
	d.index = 0
	d.lengthBits = 0
	d.state = Accepting
}

func (d *Digest1) Update(message []byte) error {
	if len(message) == 0 {
		return nil
	}
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	d.lengthBits += 8 * uint64(len(message))
	for _, b := range message {
		d.block[d.index] = b
		d.index++
		if d.index == blockSize1 {
			d.transform()
		}
	}
	return nil
}

func (d *Digest1) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *Digest1) Finalise() error {
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	d.pad(0x80)
	d.state = Finalised
	return nil
}

func (d *Digest1) FinaliseWithBits(data byte, k int) error {
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	if k < 0 || k >= 8 {
		return ucrypt.ErrInput
	}
	mask := byte(0xff << uint(8-k))
	mark := byte(0x80 >> uint(k))
	d.lengthBits += uint64(k)
	d.pad((data & mask) | mark)
	d.state = Finalised
	return nil
}

func (d *Digest1) Output(result []byte) error {
	if result == nil {
		return ucrypt.ErrHashNil
	}
	if d.state != Finalised {
		return ucrypt.ErrHashState
	}
	for t := 0; t < 5; t++ {
		binary.BigEndian.PutUint32(result[4*t:], d.h[t])
	}
	return nil
}

func (d *Digest1) Sum(b []byte) []byte {
	clone := *d
	_ = clone.Finalise()
	out := make([]byte, Size1)
	_ = clone.Output(out)
	return append(b, out...)
}

func (d *Digest1) Size() int      { return Size1 }
func (d *Digest1) BlockSize() int { return blockSize1 }

func (d *Digest1) pad(padByte byte) {
	length := d.lengthBits
	if d.index >= blockSize1-8 {
		d.block[d.index] = padByte
		d.index++
		for d.index < blockSize1 {
			d.block[d.index] = 0
			d.index++
		}
		d.transform()
	} else {
		d.block[d.index] = padByte
		d.index++
	}
	for d.index < blockSize1-8 {
		d.block[d.index] = 0
		d.index++
	}
	binary.BigEndian.PutUint64(d.block[blockSize1-8:], length)
	d.transform()
	for i := range d.block {
		d.block[i] = 0
	}
	d.lengthBits = 0
}

func (d *Digest1) transform() {
	var w [80]uint32
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(d.block[4*t:])
	}
	for t := 16; t < 80; t++ {
		w[t] = rotl32(1, w[t-3]^w[t-8]^w[t-14]^w[t-16])
	}

	a, b, c, dd, e := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]
	for t := 0; t < 80; t++ {
		var f, k uint32
		switch {
		case t < 20:
			f, k = ch32(b, c, dd), k1[0]
		case t < 40:
			f, k = parity32(b, c, dd), k1[1]
		case t < 60:
			f, k = maj32(b, c, dd), k1[2]
		default:
			f, k = parity32(b, c, dd), k1[3]
		}
		temp := rotl32(5, a) + f + e + k + w[t]
		e, dd, c, b, a = dd, c, rotl32(30, b), a, temp
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.index = 0
}

func rotl32(n, x uint32) uint32  { return x<<n | x>>(32-n) }
func parity32(x, y, z uint32) uint32 { return x ^ y ^ z }
