// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/namathieu/lineup/internal/domain/analysis"
	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/internal/domain/model"
	"github.com/namathieu/lineup/internal/domain/scoring"
)

// PlayerDependencies defines the interface for roster CRUD operations.
type PlayerDependencies interface {
	AddPlayer(ctx context.Context, p model.Player) error
	UpdatePlayer(ctx context.Context, name string, p model.Player) error
	RemovePlayer(ctx context.Context, name string) error
	Player(ctx context.Context, name string) (model.Player, error)
	Roster(ctx context.Context) (model.Roster, error)
	Fits(p model.Player) map[string]float64
}

// PlayersHandler handles roster CRUD requests.
type PlayersHandler struct {
	deps PlayerDependencies
	cat  *catalog.Catalog
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies, cat *catalog.Catalog) *PlayersHandler {
	return &PlayersHandler{deps: deps, cat: cat}
}

// rosterEntry is a player plus the derived best-role annotation used by
// roster listings and the bench.
type rosterEntry struct {
	model.Player
	BestRole string  `json:"best_role"`
	BestFit  float64 `json:"best_fit"`
}

type roleFit struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// playerDetail is the full record returned by GET /players/{name}.
type playerDetail struct {
	model.Player
	BestRole string    `json:"best_role"`
	Fits     []roleFit `json:"fits"`
}

// HandlePlayers handles POST /players and GET /players?q= requests.
func (h *PlayersHandler) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleAdd(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_player"
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.cat); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.AddPlayer(r.Context(), req.player()); err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Status: "created"})
}

func (h *PlayersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	roster, err := h.deps.Roster(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	entries := make([]rosterEntry, 0, len(roster))
	for _, p := range roster {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		entries = append(entries, h.annotate(p))
	}
	writeJSON(w, http.StatusOK, entries)
}

// HandlePlayerByName handles GET, PUT and DELETE /players/{name} requests.
func (h *PlayersHandler) HandlePlayerByName(w http.ResponseWriter, r *http.Request) {
	const op = "api.player_by_name"
	name := strings.TrimPrefix(r.URL.Path, "/players/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, name)
	case http.MethodPut:
		h.handleUpdate(w, r, name)
	case http.MethodDelete:
		h.handleRemove(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

func (h *PlayersHandler) handleGet(w http.ResponseWriter, r *http.Request, name string) {
	const op = "api.get_player"
	p, err := h.deps.Player(r.Context(), name)
	if err != nil {
		writeStoreError(w, op, err)
		return
	}
	fits := h.deps.Fits(p)
	best, _ := scoring.BestRole(fits)
	detail := playerDetail{
		Player:   p,
		BestRole: best,
		Fits:     make([]roleFit, 0, len(fits)),
	}
	// Catalog order keeps the listing stable.
	for _, role := range h.cat.Roles() {
		score := fits[role.Name]
		detail.Fits = append(detail.Fits, roleFit{
			Role:  role.Name,
			Score: score,
			Label: analysis.FitLabel(score),
		})
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *PlayersHandler) handleUpdate(w http.ResponseWriter, r *http.Request, name string) {
	const op = "api.update_player"
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.cat); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.UpdatePlayer(r.Context(), name, req.player()); err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "updated"})
}

func (h *PlayersHandler) handleRemove(w http.ResponseWriter, r *http.Request, name string) {
	const op = "api.remove_player"
	if err := h.deps.RemovePlayer(r.Context(), name); err != nil {
		writeStoreError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "removed"})
}

func (h *PlayersHandler) annotate(p model.Player) rosterEntry {
	fits := h.deps.Fits(p)
	best, score := scoring.BestRole(fits)
	return rosterEntry{Player: p, BestRole: best, BestFit: score}
}
