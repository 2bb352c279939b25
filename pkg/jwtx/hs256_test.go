package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-please-rotate")

func TestNewHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256(nil)
	require.ErrorIs(t, err, ErrNoSecret)

	_, err = NewVerifierHS256([]byte{})
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	claims := NewSessionClaims("user-1", "admin@example.com", "Admin User", DefaultSessionTTL, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3, "expected a compact JWS")

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "admin@example.com", got.Email)
	require.Equal(t, "Admin User", got.Name)
	require.Equal(t, now.Add(DefaultSessionTTL), got.ExpiresAt.Time)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret)
	require.NoError(t, err)

	// Issued in the past with a short TTL, already expired.
	claims := NewSessionClaims("user-1", "a@b.test", "A", time.Minute, time.Now().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
	require.Empty(t, got.Subject, "expired tokens must not leak claims")
}

func TestVerifyRejectsTampering(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret)
	require.NoError(t, err)

	claims := NewSessionClaims("user-1", "a@b.test", "A", DefaultSessionTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	t.Run("flipped signature byte", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)

		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err := verifier.Verify(tampered)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewVerifierHS256([]byte("a-different-secret"))
		require.NoError(t, err)

		_, err = other.Verify(token)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("definitely.not.a-jwt")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := verifier.Verify("")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("unsigned alg none token", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(unsigned)
		require.Error(t, err, "alg=none must never verify")
	})
}
