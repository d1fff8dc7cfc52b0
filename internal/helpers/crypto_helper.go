package helpers

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	hashLength = 64
	iterations = 120_000
)

var ErrEmptyPassword = errors.New("password must not be empty")

// CreatePasswordHash derives a hash for the given plaintext using PBKDF2-SHA512
// with a fresh random salt. The salt is never reused across calls.
func CreatePasswordHash(senha string) (hash, salt []byte, err error) {
	if senha == "" {
		return nil, nil, ErrEmptyPassword
	}

	salt = make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	hash = pbkdf2.Key([]byte(senha), salt, iterations, hashLength, sha512.New)
	return hash, salt, nil
}

// VerifyPasswordHash recomputes the hash over the supplied plaintext with the
// stored salt and compares in constant time.
func VerifyPasswordHash(senha string, hash, salt []byte) bool {
	if senha == "" || len(hash) == 0 || len(salt) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(senha), salt, iterations, hashLength, sha512.New)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}
