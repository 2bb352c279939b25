package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// hs256 signs and verifies compact JWTs with a single symmetric secret.
// It satisfies both Signer and Verifier since HMAC key material is shared.
type hs256 struct {
	secret []byte
}

func newHS256(secret []byte) (*hs256, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &hs256{secret: secret}, nil
}

func (h *hs256) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (h *hs256) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(h.secret)
}

// Verify parses and validates a compact token. It fails closed: every decode
// problem, signature mismatch, or expired/not-yet-valid window comes back as
// an error with zero Claims.
func (h *hs256) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&Claims{},
		func(t *jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		default:
			// Unknown failure modes still mean "not authenticated".
			return Claims{}, ErrMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrMalformed
	}

	return *claims, nil
}
