package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new hashes. Existing hashes
// carry their own cost, so this can be raised later without a migration.
const DefaultCost = 10

// ErrMismatch reports that a password does not match its stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// HashPassword produces a bcrypt hash with an embedded random salt and cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// The comparison happens inside bcrypt and is not vulnerable to timing
// shortcuts. Callers must never log either argument.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		// Structural problems with the hash also count as a mismatch from
		// the caller's perspective, but keep the cause for debugging.
		return errors.Join(ErrMismatch, err)
	}
	return nil
}
