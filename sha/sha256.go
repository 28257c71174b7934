package sha

import (
	"encoding/binary"

	"github.com/muukong/ucrypt"
)

const (
	blockSize256  = 64
	Size256       = 32
	Size224       = 28
)

var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var iv256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var iv224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// Digest256 is the shared SHA-224/SHA-256 state: they differ only in the
// initial H[] and the number of words emitted by Output (spec.md §4.4,
// "SHA-224 and SHA-384 emit a prefix of the underlying state").
type Digest256 struct {
	h          [8]uint32
	block      [blockSize256]byte
	index      int
	lengthBits uint64
	outWords   int
	state      State
}

// New256 returns a freshly initialised SHA-256 digest.
func New256() *Digest256 { d := &Digest256{}; d.init(iv256, 8); return d }

// New224 returns a freshly initialised SHA-224 digest.
func New224() *Digest256 { d := &Digest256{}; d.init(iv224, 7); return d }

func (d *Digest256) init(iv [8]uint32, outWords int) {
	d.h = iv
	d.index = 0
	d.lengthBits = 0
	d.outWords = outWords
	d.state = Accepting
}

// Reset restores the digest to its freshly initialised state, preserving
// the algorithm (224 vs 256) it was created with.
func (d *Digest256) Reset() {
	iv := iv256
	if d.outWords == 7 {
		iv = iv224
	}
	for i := range d.block {
		d.block[i] = 0
	}
	d.init(iv, d.outWords)
}

// Update feeds message bytes into the digest (spec.md §4.4 "update").
func (d *Digest256) Update(message []byte) error {
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
		if d.index == blockSize256 {
			d.transform()
		}
	}
	return nil
}

// Write implements io.Writer / hash.Hash.
func (d *Digest256) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalise pads and closes the digest (spec.md §4.4 "finalise").
func (d *Digest256) Finalise() error {
	if d.state != Accepting {
		return ucrypt.ErrHashState
	}
	d.pad(0x80)
	d.state = Finalised
	return nil
}

// FinaliseWithBits closes the digest on a sub-byte boundary: the high k
// bits of data plus a single terminator bit form the final partial byte
// (spec.md §4.4 "finalise-with-bits"), 0 <= k < 8.
func (d *Digest256) FinaliseWithBits(data byte, k int) error {
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

// Output emits the big-endian digest into a caller buffer (spec.md §4.4
// "output"); the word count is outWords (8 for SHA-256, 7 for SHA-224).
func (d *Digest256) Output(result []byte) error {
	if result == nil {
		return ucrypt.ErrHashNil
	}
	if d.state != Finalised {
		return ucrypt.ErrHashState
	}
	for t := 0; t < d.outWords; t++ {
		binary.BigEndian.PutUint32(result[4*t:], d.h[t])
	}
	return nil
}

// Sum implements hash.Hash: it appends the digest to b without mutating
// the running state.
func (d *Digest256) Sum(b []byte) []byte {
	clone := *d
	_ = clone.Finalise()
	out := make([]byte, d.outWords*4)
	_ = clone.Output(out)
	return append(b, out...)
}

func (d *Digest256) Size() int      { return d.outWords * 4 }
func (d *Digest256) BlockSize() int { return blockSize256 }

func (d *Digest256) pad(padByte byte) {
	length := d.lengthBits
	if d.index >= blockSize256-8 {
		d.block[d.index] = padByte
		d.index++
		for d.index < blockSize256 {
			d.block[d.index] = 0
			d.index++
		}
		d.transform()
	} else {
		d.block[d.index] = padByte
		d.index++
	}
	for d.index < blockSize256-8 {
		d.block[d.index] = 0
		d.index++
	}
	binary.BigEndian.PutUint64(d.block[blockSize256-8:], length)
	d.transform()
	for i := range d.block {
		d.block[i] = 0
	}
	d.lengthBits = 0
}

func (d *Digest256) transform() {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(d.block[4*t:])
	}
	for t := 16; t < 64; t++ {
		w[t] = ssig1_32(w[t-2]) + w[t-7] + ssig0_32(w[t-15]) + w[t-16]
	}

	a, b, c, dd, e, f, g, h := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4], d.h[5], d.h[6], d.h[7]
	for t := 0; t < 64; t++ {
		t1 := h + bsig1_32(e) + ch32(e, f, g) + k256[t] + w[t]
		t2 := bsig0_32(a) + maj32(a, b, c)
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

func ch32(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj32(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }
func rotr32(n, x uint32) uint32   { return x>>n | x<<(32-n) }

func bsig0_32(x uint32) uint32 { return rotr32(2, x) ^ rotr32(13, x) ^ rotr32(22, x) }
func bsig1_32(x uint32) uint32 { return rotr32(6, x) ^ rotr32(11, x) ^ rotr32(25, x) }
func ssig0_32(x uint32) uint32 { return rotr32(7, x) ^ rotr32(18, x) ^ (x >> 3) }
func ssig1_32(x uint32) uint32 { return rotr32(17, x) ^ rotr32(19, x) ^ (x >> 10) }
