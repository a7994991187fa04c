package api

import (
	"context"
	"io"
	"net/http"
)

// ImportDependencies defines the interface for squad export ingestion.
type ImportDependencies interface {
	ImportHTML(ctx context.Context, r io.Reader) (int, error)
}

// ImportHandler handles squad export uploads.
type ImportHandler struct {
	deps ImportDependencies
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps ImportDependencies) *ImportHandler {
	return &ImportHandler{deps: deps}
}

// HandleImport handles POST /import requests carrying an HTML squad export.
func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	n, err := h.deps.ImportHTML(r.Context(), r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusAccepted, importResponse{Imported: n})
}
