package hmac

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/muukong/ucrypt/sha"
)

// RFC 4231 test case 1, HMAC-SHA-256: key = 20 bytes of 0x0b, message =
// "Hi There" (spec.md §8 boundary scenario 6).
func TestHMACSHA256RFC4231Case1(t *testing.T) {
	key := bytes.Repeat([]byte{0x0b}, 20)
	msg := []byte("Hi There")
	want, _ := hex.DecodeString("b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7")

	got, err := Sum(sha.SHA256, key, msg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA256 = %x, want %x", got, want)
	}
}

// RFC 4231 test case 2: key = "Jefe", message = "what do ya want for nothing?"
func TestHMACSHA256RFC4231Case2(t *testing.T) {
	key := []byte("Jefe")
	msg := []byte("what do ya want for nothing?")
	want, _ := hex.DecodeString("5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843")

	got, err := Sum(sha.SHA256, key, msg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC-SHA256 = %x, want %x", got, want)
	}
}

func TestHMACKeyLongerThanBlockIsHashed(t *testing.T) {
	key := bytes.Repeat([]byte{0xaa}, 200) // longer than SHA-256's 64-byte block
	msg := []byte("test")
	got, err := Sum(sha.SHA256, key, msg)
	if err != nil {
		t.Fatal(err)
	}

	// The long key is replaced by its SHA-256 digest, so the MAC must equal
	// the MAC under that digest used directly as the key.
	h := sha.New256()
	if err := h.Update(key); err != nil {
		t.Fatal(err)
	}
	if err := h.Finalise(); err != nil {
		t.Fatal(err)
	}
	hashedKey := make([]byte, h.Size())
	if err := h.Output(hashedKey); err != nil {
		t.Fatal(err)
	}
	want, err := Sum(sha.SHA256, hashedKey, msg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("HMAC with long key = %x, want HMAC with hashed key %x", got, want)
	}
}

func TestHMACUpdateAfterFinaliseRejected(t *testing.T) {
	c, err := New(sha.SHA256, []byte("key"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Finalise(); err != nil {
		t.Fatal(err)
	}
	if err := c.Update([]byte("x")); err == nil {
		t.Fatal("expected error updating a finalised context")
	}
}
