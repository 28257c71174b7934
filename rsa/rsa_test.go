package rsa

import (
	"testing"

	"github.com/muukong/ucrypt/bignum"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pub, priv, err := GenerateKey(64)
	if err != nil {
		t.Fatal(err)
	}
	if !pub.N.Eq(priv.N) {
		t.Fatalf("public and private modulus differ")
	}

	m := bignum.NewFromUint64(42)
	if !m.Lt(pub.N) {
		t.Skip("modulus too small for fixture message")
	}

	c, err := Encrypt(m, pub)
	if err != nil {
		t.Fatal(err)
	}
	recovered, err := Decrypt(c, priv)
	if err != nil {
		t.Fatal(err)
	}
	if !recovered.Eq(m) {
		t.Fatalf("decrypt(encrypt(m)) = %s, want %s", recovered.String(), m.String())
	}
}

func TestEncryptRejectsOutOfRange(t *testing.T) {
	pub, _, err := GenerateKey(64)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Encrypt(pub.N, pub); err == nil {
		t.Fatal("expected error encrypting m == n")
	}
}

func TestGenerateKeyRejectsOddBitLength(t *testing.T) {
	if _, _, err := GenerateKey(65); err == nil {
		t.Fatal("expected error for odd nBits")
	}
}
