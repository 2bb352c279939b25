package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetSessionCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "signed-token-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, SessionCookieName, c.Name)
	require.Equal(t, "signed-token-value", c.Value)
	require.Equal(t, "/", c.Path)
	require.Equal(t, int(SessionCookieMaxAge.Seconds()), c.MaxAge)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestSessionTokenFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok"})

		token, ok := SessionTokenFromRequest(r)
		require.True(t, ok)
		require.Equal(t, "tok", token)
	})

	t.Run("absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		_, ok := SessionTokenFromRequest(r)
		require.False(t, ok)
	})

	t.Run("empty value counts as absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		r.Header.Set("Cookie", SessionCookieName+"=")
		_, ok := SessionTokenFromRequest(r)
		require.False(t, ok)
	})
}

func TestClearSessionCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, SessionCookieName, c.Name)
	require.Empty(t, c.Value)
	require.Equal(t, "/", c.Path)
	require.Negative(t, c.MaxAge, "browser must delete the cookie")
}
