package http

import (
	"encoding/json"
	"net/http"

	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/pkg/httpx"
)

// TestimonialsHandler serves /api/testimonials.
type TestimonialsHandler struct {
	Testimonials *service.TestimonialService
}

func (h *TestimonialsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Testimonials.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *TestimonialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.TestimonialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	created, err := h.Testimonials.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *TestimonialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch service.TestimonialPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	updated, err := h.Testimonials.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *TestimonialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Testimonials.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
