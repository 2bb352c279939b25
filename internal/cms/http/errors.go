package http

import (
	"errors"
	"net/http"

	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/internal/cms/store"
	"github.com/openvoyage/voyage/pkg/httpx"
	"github.com/openvoyage/voyage/pkg/slogx"
)

// errorBody is the uniform JSON error envelope: {"error": ...}. The payload
// is either a plain message or a validation detail object.
type errorBody struct {
	Error any `json:"error"`
}

// validationDetail mirrors the shape the dashboard forms expect:
// {"error":{"fieldErrors":{"title":["..."]}}}.
type validationDetail struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, errorBody{Error: msg})
}

func writeValidationError(w http.ResponseWriter, ve *service.ValidationError) {
	httpx.WriteJSON(w, http.StatusBadRequest, errorBody{
		Error: validationDetail{FieldErrors: ve.Fields},
	})
}

// writeServiceError maps service-layer failures onto HTTP responses.
// Validation problems carry field detail, missing records 404, and anything
// unexpected is logged and answered with an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
