package auth_test

import (
	"bytes"
	"testing"

	"github.com/abmshq/abms-backend/application/auth"
)

func TestHashPassword(t *testing.T) {
	hash, salt, err := auth.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if len(hash) != 64 || len(salt) != 64 {
		t.Fatalf("HashPassword() hash/salt sizes = %d/%d, want 64/64", len(hash), len(salt))
	}

	if !auth.VerifyPassword("correct horse battery", hash, salt) {
		t.Fatal("VerifyPassword() = false for the original password")
	}
	if auth.VerifyPassword("wrong password", hash, salt) {
		t.Fatal("VerifyPassword() = true for a wrong password")
	}
}

func TestHashPassword_SaltIsUnique(t *testing.T) {
	hash1, salt1, err := auth.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	hash2, salt2, err := auth.HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if bytes.Equal(salt1, salt2) {
		t.Fatal("two hashes of the same password share a salt")
	}
	if bytes.Equal(hash1, hash2) {
		t.Fatal("two hashes of the same password are identical")
	}
}
