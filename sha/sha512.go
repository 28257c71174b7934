package sha

import (
	"encoding/binary"

	"github.com/muukong/ucrypt"
)

const (
	blockSize512 = 128
	Size512      = 64
	Size384      = 48
)

var k512 = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

var iv512 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

var iv384 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

// Digest512 is the shared SHA-384/SHA-512 state: 64-bit words, 80 rounds,
// a 128-bit message-length counter carried across two uint64 halves (spec.md
// §4.4 "SHA-512 uses a 128-bit counter propagated across two 64-bit halves
// with carry").
type Digest512 struct {
	h              [8]uint64
	block          [blockSize512]byte
	index          int
	lengthLo       uint64
	lengthHi       uint64
	outWords       int
	state          State
}

// New512 returns a freshly initialised SHA-512 digest.
func New512() *Digest512 { d := &Digest512{}; d.init(iv512, 8); return d }

// New384 returns a freshly initialised SHA-384 digest.
func New384() *Digest512 { d := &Digest512{}; d.init(iv384, 6); return d }

func (d *Digest512) init(iv [8]uint64, outWords int) {
	d.h = iv
	d.index = 0
	d.lengthLo, d.lengthHi = 0, 0
	d.outWords = outWords
	d.state = Accepting
}

func (d *Digest512) Reset() {
	iv := iv512
	if d.outWords == 6 {
		iv = iv384
	}
	for i := range d.block {
		d.block[i] = 0
	}
	d.init(iv, d.outWords)
}

func (d *Digest512) addLength(nbits uint64) {
	prev := d.lengthLo
	d.lengthLo += nbits
	if d.lengthLo < prev {
		d.lengthHi++
	}
}

func (d *Digest512) Update(message []byte) error {
	if len(message) == 0 {
		return nil
	}
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	d.addLength(8 * uint64(len(message)))
	for _, b := range message {
		d.block[d.index] = b
		d.index++
		if d.index == blockSize512 {
			d.transform()
		}
	}
	return nil
}

func (d *Digest512) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *Digest512) Finalise() error {
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	d.pad(0x80)
	d.state = Finalised
	return nil
}

func (d *Digest512) FinaliseWithBits(data byte, k int) error {
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	if k < 0 || k >= 8 {
		return ucrypt.ErrInput
	}
	mask := byte(0xff << uint(8-k))
	mark := byte(0x80 >> uint(k))
	d.addLength(uint64(k))
	d.pad((data & mask) | mark)
	d.state = Finalised
	return nil
}

func (d *Digest512) Output(result []byte) error {
	if result == nil {
		return ucrypt.ErrHashNil
	}
	if d.state != Finalised {
		return ucrypt.ErrHashState
	}
	for t := 0; t < d.outWords; t++ {
		binary.BigEndian.PutUint64(result[8*t:], d.h[t])
	}
	return nil
}

func (d *Digest512) Sum(b []byte) []byte {
	clone := *d
	_ = clone.Finalise()
	out := make([]byte, d.outWords*8)
	_ = clone.Output(out)
	return append(b, out...)
}

func (d *Digest512) Size() int      { return d.outWords * 8 }
func (d *Digest512) BlockSize() int { return blockSize512 }

func (d *Digest512) pad(padByte byte) {
	lo, hi := d.lengthLo, d.lengthHi
	if d.index >= blockSize512-16 {
		d.block[d.index] = padByte
		d.index++
		for d.index < blockSize512 {
			d.block[d.index] = 0
			d.index++
		}
		d.transform()
	} else {
		d.block[d.index] = padByte
		d.index++
	}
	for d.index < blockSize512-16 {
		d.block[d.index] = 0
		d.index++
	}
	binary.BigEndian.PutUint64(d.block[blockSize512-16:], hi)
	binary.BigEndian.PutUint64(d.block[blockSize512-8:], lo)
	d.transform()
	for i := range d.block {
		d.block[i] = 0
	}
	d.lengthLo, d.lengthHi = 0, 0
}

func (d *Digest512) transform() {
	var w [80]uint64
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint64(d.block[8*t:])
	}
	for t := 16; t < 80; t++ {
		w[t] = ssig1_64(w[t-2]) + w[t-7] + ssig0_64(w[t-15]) + w[t-16]
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]
	for t := 0; t < 80; t++ {
		t1 := h + bsig1_64(e) + ch64(e, f, g) + k512[t] + w[t]
		t2 := bsig0_64(a) + maj64(a, b, c)
		h, g, f, e = g, f, e, dd+t1
		dd, c, b, a = c, b, a, t1+t2
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
	d.h[5] += f
	d.h[6] += g
	d.h[7] += h
	d.index = 0
}

func ch64(x, y, z uint64) uint64  { return (x & y) ^ (^x & z) }
func maj64(x, y, z uint64) uint64 { return (x & y) ^ (x & z) ^ (y & z) }
func rotr64(n, x uint64) uint64   { return x>>n | x<<(64-n) }

func bsig0_64(x uint64) uint64 { return rotr64(28, x) ^ rotr64(34, x) ^ rotr64(39, x) }
func bsig1_64(x uint64) uint64 { return rotr64(14, x) ^ rotr64(18, x) ^ rotr64(41, x) }
func ssig0_64(x uint64) uint64 { return rotr64(1, x) ^ rotr64(8, x) ^ (x >> 7) }
func ssig1_64(x uint64) uint64 { return rotr64(19, x) ^ rotr64(61, x) ^ (x >> 6) }
