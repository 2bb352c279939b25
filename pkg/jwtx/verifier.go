package jwtx

import "errors"

// Verifier validates a session token and gives you back the claims if it's
// legit. Any error from Verify means "not authenticated" - callers must never
// fall back to a partial or default identity.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrNoSecret    = errors.New("jwtx: signing secret is empty")
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
)

// NewVerifierHS256 creates an HS256 verifier from the same shared secret the
// signer uses.
func NewVerifierHS256(secret []byte) (Verifier, error) {
	return newHS256(secret)
}
