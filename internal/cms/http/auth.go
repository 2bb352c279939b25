package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/pkg/httpx"
	"github.com/openvoyage/voyage/pkg/slogx"
)

// minPasswordLength is a request-shape check, not a password policy; the
// stored hash decides whether a login succeeds.
const minPasswordLength = 6

// AuthHandler serves POST /api/auth/login and POST /api/auth/logout.
type AuthHandler struct {
	Sessions *service.SessionService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and, on success, attaches the session cookie.
// Attaching is the last step on purpose: no failure path and no cancelled
// request can leave a half-set session behind.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if ve := validateLogin(req); ve != nil {
		writeValidationError(w, ve)
		return
	}

	token, _, err := h.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same body and status whether the account exists or not.
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slogx.FromContext(r.Context()).Error("login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.SetSessionCookie(w, token)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout clears the session cookie. Always succeeds, even without a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.ClearSessionCookie(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func validateLogin(req loginRequest) *service.ValidationError {
	ve := &service.ValidationError{Fields: make(map[string][]string)}

	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		ve.Fields["email"] = append(ve.Fields["email"], "must be a valid email address")
	}
	if len(req.Password) < minPasswordLength {
		ve.Fields["password"] = append(ve.Fields["password"], "must be at least 6 characters")
	}

	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}
