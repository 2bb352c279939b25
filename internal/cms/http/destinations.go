package http

import (
	"encoding/json"
	"net/http"

	"github.com/openvoyage/voyage/internal/cms/service"
	"github.com/openvoyage/voyage/pkg/httpx"
)

// DestinationsHandler serves /api/destinations.
type DestinationsHandler struct {
	Destinations *service.DestinationService
}

func (h *DestinationsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Destinations.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *DestinationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.DestinationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	created, err := h.Destinations.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *DestinationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch service.DestinationPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	updated, err := h.Destinations.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *DestinationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Destinations.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
