package pbkdf2

import (
	"bytes"
	"testing"

	"github.com/muukong/ucrypt/hmac"
	"github.com/muukong/ucrypt/sha"
)

// T_i formed from c iterated HMACs equals the XOR of the c intermediate
// U's (spec.md §8, "PBKDF2 idempotence across iterations"), checked
// directly against the blockF helper for a small iteration count.
func TestBlockFMatchesManualXOR(t *testing.T) {
	password := []byte("password")
	salt := []byte("salt")
	c := 4

	got, err := blockF(sha.SHA256, password, salt, c, 1)
	if err != nil {
		t.Fatal(err)
	}

	ctx, err := hmac.New(sha.SHA256, password)
	if err != nil {
		t.Fatal(err)
	}
	u := mustHMAC(t, ctx, salt, []byte{0, 0, 0, 1})
	want := append([]byte(nil), u...)
	for i := 1; i < c; i++ {
		if err := ctx.Reset(); err != nil {
			t.Fatal(err)
		}
		u = mustHMAC(t, ctx, u)
		for j := range want {
			want[j] ^= u[j]
		}
	}

	if !bytes.Equal(got, want) {
		t.Fatalf("blockF = %x, want %x", got, want)
	}
}

func mustHMAC(t *testing.T, ctx *hmac.Context, parts ...[]byte) []byte {
	t.Helper()
	for _, p := range parts {
		if err := ctx.Update(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := ctx.Finalise(); err != nil {
		t.Fatal(err)
	}
	out := make([]byte, ctx.Size())
	if err := ctx.Output(out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestKeyLengthMatchesRequest(t *testing.T) {
	dk, err := Key(sha.SHA256, []byte("password"), []byte("salt"), 1000, 37)
	if err != nil {
		t.Fatal(err)
	}
	if len(dk) != 37 {
		t.Fatalf("len(dk) = %d, want 37", len(dk))
	}
}

func TestKeyDeterministic(t *testing.T) {
	a, err := Key(sha.SHA256, []byte("pw"), []byte("salt"), 10, 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Key(sha.SHA256, []byte("pw"), []byte("salt"), 10, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("PBKDF2 output not deterministic")
	}
}
