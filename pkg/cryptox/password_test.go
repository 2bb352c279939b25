package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
		{"empty password", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.True(t, strings.HasPrefix(hash, "$2"),
				"hash should be in bcrypt modular crypt format")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("wrong password", hash), ErrMismatch)
	})

	t.Run("case sensitive", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("Correct horse battery staple", hash), ErrMismatch)
	})

	t.Run("garbage hash", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("anything", "not-a-bcrypt-hash"), ErrMismatch)
	})
}
