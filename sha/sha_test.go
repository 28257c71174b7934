package sha

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func digestBytes(t *testing.T, v Variant, msg []byte) []byte {
	t.Helper()
	h, err := New(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Update(msg); err != nil {
		t.Fatal(err)
	}
	if err := h.Finalise(); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, h.Size())
	if err := h.Output(out); err != nil {
		t.Fatal(err)
	}
	return out
}

// SHA-256 of "abc" from spec.md §8.
func TestSHA256Abc(t *testing.T) {
	want, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	got := digestBytes(t, SHA256, []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("SHA-256(abc) = %x, want %x", got, want)
	}
}

// SHA-512 of "abc" from spec.md §8.
func TestSHA512Abc(t *testing.T) {
	want, _ := hex.DecodeString("ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f")
	got := digestBytes(t, SHA512, []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("SHA-512(abc) = %x, want %x", got, want)
	}
}

func TestSHA1Abc(t *testing.T) {
	want, _ := hex.DecodeString("a9993e364706816aba3e25717850c26c9cd0d89d")
	got := digestBytes(t, SHA1, []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("SHA-1(abc) = %x, want %x", got, want)
	}
}

func TestSHA224Abc(t *testing.T) {
	want, _ := hex.DecodeString("23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7")
	got := digestBytes(t, SHA224, []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("SHA-224(abc) = %x, want %x", got, want)
	}
}

func TestSHA384Abc(t *testing.T) {
	want, _ := hex.DecodeString("cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a9")
	got := digestBytes(t, SHA384, []byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("SHA-384(abc) = %x, want %x", got, want)
	}
}

// update(ab) = update(a); update(b) over an arbitrary split (spec.md §8 law).
func TestUpdateSplitInvariant(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	whole := digestBytes(t, SHA256, msg)

	h, err := New(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	split := 7
	if err := h.Update(msg[:split]); err != nil {
		t.Fatal(err)
	}
	if err := h.Update(msg[split:]); err != nil {
		t.Fatal(err)
	}
	if err := h.Finalise(); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, h.Size())
	if err := h.Output(got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, whole) {
		t.Fatalf("split update mismatch: %x vs %x", got, whole)
	}
}

func TestUpdateAfterFinaliseRejected(t *testing.T) {
	h, err := New(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Finalise(); err != nil {
		t.Fatal(err)
	}
	if err := h.Update([]byte("x")); err == nil {
		t.Fatal("expected error updating a finalised context")
	}
}

func TestOutputBeforeFinaliseRejected(t *testing.T) {
	h, err := New(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Output(make([]byte, h.Size())); err == nil {
		t.Fatal("expected error reading output before finalise")
	}
}

func TestFinaliseWithBitsMatchesWholeBytePrefix(t *testing.T) {
	// With k = 0 no bits of the final byte are taken, so FinaliseWithBits
	// pads exactly as Finalise does and must reproduce the plain digest of
	// the whole-byte prefix.
	prefix := []byte("abc")
	want := digestBytes(t, SHA256, prefix)
	hz, err := New(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if err := hz.Update(prefix); err != nil {
		t.Fatal(err)
	}
	if err := hz.FinaliseWithBits(0xFF, 0); err != nil {
		t.Fatal(err)
	}
	gotZero := make([]byte, hz.Size())
	if err := hz.Output(gotZero); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotZero, want) {
		t.Fatalf("FinaliseWithBits(k=0) = %x, want Finalise digest %x", gotZero, want)
	}

	// 0xC0 with k=2 contributes the two bits "11" then a terminator bit;
	// it still yields a full-length digest.
	h, err := New(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.FinaliseWithBits(0xC0, 2); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, h.Size())
	if err := h.Output(out); err != nil {
		t.Fatal(err)
	}
	if len(out) != Size256 {
		t.Fatalf("unexpected digest length %d", len(out))
	}
}

func TestResetReturnsToAccepting(t *testing.T) {
	h, err := New(SHA256)
	if err != nil {
		t.Fatal(err)
	}
	_ = h.Update([]byte("abc"))
	_ = h.Finalise()
	h.Reset()
	if err := h.Update([]byte("abc")); err != nil {
		t.Fatalf("update after reset should succeed: %v", err)
	}
}
