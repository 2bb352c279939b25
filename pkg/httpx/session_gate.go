package httpx

import (
	"net/http"
	"strings"

	"github.com/openvoyage/voyage/pkg/jwtx"
	"github.com/openvoyage/voyage/pkg/slogx"
)

// SessionGate protects every path under protectedPrefix. Requests outside the
// prefix pass through untouched. Inside it, a request either carries a valid
// session cookie and proceeds with claims attached to its context, or it gets
// redirected to loginPath. The gate always redirects instead of returning a
// bare 401 so an expired session lands the user on the login form, and it
// never tells the client why a token was rejected.
func SessionGate(v jwtx.Verifier, protectedPrefix, loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !underPrefix(r.URL.Path, protectedPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := SessionTokenFromRequest(r)
			if !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			claims, err := v.Verify(token)
			if err != nil {
				// Reason stays in the logs, not in the response.
				slogx.FromContext(r.Context()).Warn("session token rejected", "err", err)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			ctx := contextWithSession(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// underPrefix matches the prefix itself and anything below it, without
// matching sibling paths that merely share the string ("/dashboardx").
func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
