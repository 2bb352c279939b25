package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/cryptox"
	"github.com/openvoyage/voyage/pkg/jwtx"
)

// ErrInvalidCredentials covers both "no such user" and "wrong password".
// Callers must not be able to tell the two apart, so account existence
// cannot be probed through the login endpoint.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// SessionService authenticates admin users and issues session tokens.
// It is stateless: a token it issues is valid until its embedded expiry and
// there is no server-side record to revoke.
type SessionService struct {
	Store  store.Store
	Signer jwtx.Signer
	TTL    time.Duration
}

// Login verifies the credentials and returns a signed session token plus the
// claims it carries. On any credential failure the only error surfaced is
// ErrInvalidCredentials; infrastructure failures pass through wrapped so the
// handler can log them and still answer generically.
//
// Note the password hash is only computed for existing accounts, so lookup
// misses return marginally faster than wrong passwords. Inherited behaviour;
// equalising it would change observable latency for every login.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, jwtx.Claims, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", jwtx.Claims{}, ErrInvalidCredentials
		}
		return "", jwtx.Claims{}, fmt.Errorf("user lookup: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", jwtx.Claims{}, ErrInvalidCredentials
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Email, user.Name, s.ttl(), time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", jwtx.Claims{}, fmt.Errorf("sign session token: %w", err)
	}

	return token, claims, nil
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}
