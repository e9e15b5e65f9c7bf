// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/namathieu/lineup/internal/adapters/repository"
)

// RosterDependencies defines the interface for snapshot persistence.
type RosterDependencies interface {
	SaveSnapshot(ctx context.Context, path string) (int, error)
	LoadSnapshot(ctx context.Context, path string) (int, error)
}

// RosterHandler handles roster snapshot requests.
type RosterHandler struct {
	deps RosterDependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps RosterDependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

// snapshotRequest optionally overrides the configured snapshot path.
type snapshotRequest struct {
	Path string `json:"path"`
}

type snapshotResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

// HandleSave handles POST /roster/save requests.
func (h *RosterHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_roster"
	req, ok := h.decode(w, r, op)
	if !ok {
		return
	}
	count, err := h.deps.SaveSnapshot(r.Context(), req.Path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "snapshot_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse{Status: "saved", Players: count})
}

// HandleLoad handles POST /roster/load requests. A failed load leaves the
// in-memory roster untouched.
func (h *RosterHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	const op = "api.load_roster"
	req, ok := h.decode(w, r, op)
	if !ok {
		return
	}
	count, err := h.deps.LoadSnapshot(r.Context(), req.Path)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSnapshotMalformed):
			writeError(w, http.StatusUnprocessableEntity, "snapshot_malformed", Wrap(op, err))
		case errors.Is(err, repository.ErrSnapshotRead):
			writeError(w, http.StatusNotFound, "snapshot_missing", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "snapshot_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, snapshotResponse{Status: "loaded", Players: count})
}

func (h *RosterHandler) decode(w http.ResponseWriter, r *http.Request, op string) (snapshotRequest, bool) {
	var req snapshotRequest
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return req, false
	}
	// An empty body means "use the configured path".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return req, false
	}
	return req, true
}
