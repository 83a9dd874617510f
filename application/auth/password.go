package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 64
	keySize    = 64
	iterations = 350000
)

// HashPassword derives a PBKDF2-SHA512 hash from the plaintext with a
// fresh random salt. Both outputs must be persisted; the plaintext
// never is.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, err
	}
	hash = pbkdf2.Key([]byte(password), salt, iterations, keySize, sha512.New)
	return hash, salt, nil
}

// VerifyPassword re-derives with the stored salt and compares in
// constant time.
func VerifyPassword(password string, hash, salt []byte) bool {
	derived := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha512.New)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
