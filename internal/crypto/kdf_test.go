package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_LengthAndDeterminism(t *testing.T) {
	k1, err := DeriveKey("correct horse battery staple")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := DeriveKey("correct horse battery staple")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for the same secret")
	}
}

func TestDeriveKey_DifferentSecretsProduceDifferentKeys(t *testing.T) {
	k1, err := DeriveKey("secret one")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := DeriveKey("secret two")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ for different secrets")
	}
}

func TestDeriveKey_ReturnsCopyOfCachedKey(t *testing.T) {
	k1, err := DeriveKey("cached secret")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k1[0] ^= 0xFF

	k2, err := DeriveKey("cached secret")
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	if k1[0] == k2[0] {
		t.Fatalf("mutating a returned key must not affect the cache")
	}
}

func TestDeriveKey_EmptySecret(t *testing.T) {
	_, err := DeriveKey("")
	if !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}
