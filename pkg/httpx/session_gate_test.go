package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openvoyage/voyage/pkg/jwtx"
)

func newGateFixture(t *testing.T) (jwtx.Signer, http.Handler, *bool) {
	t.Helper()

	secret := []byte("gate-test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret)
	require.NoError(t, err)

	reached := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	gate := SessionGate(verifier, "/dashboard", "/login")
	return signer, gate(inner), &reached
}

func TestSessionGateRedirectsWithoutCookie(t *testing.T) {
	t.Parallel()

	_, handler, reached := newGateFixture(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
	require.False(t, *reached)
}

func TestSessionGateAllowsValidToken(t *testing.T) {
	t.Parallel()

	signer, handler, reached := newGateFixture(t)

	claims := jwtx.NewSessionClaims("user-1", "a@b.test", "A", jwtx.DefaultSessionTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/dashboard/destinations", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *reached)
}

func TestSessionGateRedirectsBadTokens(t *testing.T) {
	t.Parallel()

	signer, handler, reached := newGateFixture(t)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"expired", func(t *testing.T) string {
			c := jwtx.NewSessionClaims("user-1", "a@b.test", "A", time.Minute, time.Now().Add(-time.Hour))
			token, err := signer.Sign(c)
			require.NoError(t, err)
			return token
		}},
		{"tampered", func(t *testing.T) string {
			c := jwtx.NewSessionClaims("user-1", "a@b.test", "A", jwtx.DefaultSessionTTL, time.Now())
			token, err := signer.Sign(c)
			require.NoError(t, err)
			last := token[len(token)-1]
			if last == 'A' {
				return token[:len(token)-1] + "B"
			}
			return token[:len(token)-1] + "A"
		}},
		{"garbage", func(t *testing.T) string { return "not-a-token" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*reached = false

			r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.token(t)})

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, r)

			require.Equal(t, http.StatusSeeOther, rec.Code)
			require.Equal(t, "/login", rec.Header().Get("Location"))
			require.False(t, *reached)
		})
	}
}

func TestSessionGateIgnoresOtherPaths(t *testing.T) {
	t.Parallel()

	_, handler, reached := newGateFixture(t)

	for _, path := range []string{"/", "/login", "/api/destinations", "/dashboardx"} {
		*reached = false

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, "path %s should bypass the gate", path)
		require.True(t, *reached, "path %s should reach the handler", path)
	}
}

func TestSessionGateAttachesClaims(t *testing.T) {
	t.Parallel()

	secret := []byte("gate-test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret)
	require.NoError(t, err)

	var gotID string
	var gotClaims jwtx.Claims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserIDFromContext(r.Context())
		gotClaims, _ = SessionFromContext(r.Context())
	})

	handler := SessionGate(verifier, "/dashboard", "/login")(inner)

	claims := jwtx.NewSessionClaims("user-42", "admin@example.com", "Admin", jwtx.DefaultSessionTTL, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	require.Equal(t, "user-42", gotID)
	require.Equal(t, "admin@example.com", gotClaims.Email)
	require.Equal(t, "Admin", gotClaims.Name)
}
