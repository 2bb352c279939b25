package httpx

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "auth"

// SessionCookieMaxAge matches the token TTL so the cookie and the signature
// inside it expire together.
const SessionCookieMaxAge = 7 * 24 * time.Hour

// SetSessionCookie attaches the session token to the response with the fixed
// attribute set: HttpOnly, Secure, SameSite=Lax, path "/". This is pure
// transport - the token contents are never interpreted here.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionTokenFromRequest returns the raw session token, if the request
// carries one.
func SessionTokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// ClearSessionCookie overwrites the session cookie with an empty value and a
// negative max-age so the browser deletes it on the next request.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
