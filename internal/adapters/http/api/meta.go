package api

import (
	"context"
	"net/http"
)

// MetaDependencies defines the interface for definition and matrix lookups.
type MetaDependencies interface {
	Tactics(ctx context.Context) map[string]map[string][]string
	Roles(ctx context.Context) map[string]map[string]string
	RoleMatrix(ctx context.Context) (map[string]map[string]string, error)
}

// MetaHandler serves the defined tactics, roles and the rating matrix.
type MetaHandler struct {
	deps MetaDependencies
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(deps MetaDependencies) *MetaHandler {
	return &MetaHandler{deps: deps}
}

// HandleGetTactics handles GET /tactics requests.
func (h *MetaHandler) HandleGetTactics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Tactics(r.Context()))
}

// HandleGetRoles handles GET /roles requests.
func (h *MetaHandler) HandleGetRoles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Roles(r.Context()))
}

// HandleGetMatrix handles GET /matrix requests.
func (h *MetaHandler) HandleGetMatrix(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	matrix, err := h.deps.RoleMatrix(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}
