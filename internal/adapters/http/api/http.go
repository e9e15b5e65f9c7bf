// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/namathieu/lineup/internal/adapters/repository"
	"github.com/namathieu/lineup/internal/domain/assignment"
	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/internal/domain/model"
)

// Editing surface bounds. The scorer itself tolerates any age; these only
// gate what the API accepts.
const (
	minPlayerAge  = 16
	maxPlayerAge  = 35
	maxSkillValue = 100
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Roster mutations.
	AddPlayer(ctx context.Context, p model.Player) error
	UpdatePlayer(ctx context.Context, name string, p model.Player) error
	RemovePlayer(ctx context.Context, name string) error

	// Read operations.
	Player(ctx context.Context, name string) (model.Player, error)
	Roster(ctx context.Context) (model.Roster, error)

	// Fits computes per-role fit percentages for a player.
	Fits(p model.Player) map[string]float64

	// Evaluate computes the optimal lineup for the current roster.
	Evaluate(ctx context.Context) (assignment.Result, error)

	// Snapshot persistence. Both return the number of players involved.
	SaveSnapshot(ctx context.Context, path string) (int, error)
	LoadSnapshot(ctx context.Context, path string) (int, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	playersHandler    *PlayersHandler
	evaluationHandler *EvaluationHandler
	rosterHandler     *RosterHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, cat *catalog.Catalog, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		playersHandler:    NewPlayersHandler(deps, cat),
		evaluationHandler: NewEvaluationHandler(deps, cat),
		rosterHandler:     NewRosterHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandlePlayers, "players"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandlePlayerByName, "player"))
	mux.HandleFunc("/evaluation", MetricsMiddleware(s.evaluationHandler.HandlePostEvaluation, "evaluation"))
	mux.HandleFunc("/roster/save", MetricsMiddleware(s.rosterHandler.HandleSave, "roster_save"))
	mux.HandleFunc("/roster/load", MetricsMiddleware(s.rosterHandler.HandleLoad, "roster_load"))
}

// playerRequest mirrors the JSON schema for POST /players and PUT /players/{name}.
type playerRequest struct {
	Name   string         `json:"name"`
	Age    int            `json:"age"`
	Skills map[string]int `json:"skills"`
}

func (p playerRequest) validate(cat *catalog.Catalog) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("missing name")
	}
	if p.Age < minPlayerAge || p.Age > maxPlayerAge {
		return fmt.Errorf("age must be between %d and %d", minPlayerAge, maxPlayerAge)
	}
	for skill, value := range p.Skills {
		if !cat.KnownSkill(skill) {
			return fmt.Errorf("unknown skill %q", skill)
		}
		if value < 0 || value > maxSkillValue {
			return fmt.Errorf("skill %q must be between 0 and %d", skill, maxSkillValue)
		}
	}
	return nil
}

func (p playerRequest) player() model.Player {
	skills := make(map[string]int, len(p.Skills))
	for k, v := range p.Skills {
		skills[k] = v
	}
	return model.Player{Name: strings.TrimSpace(p.Name), Age: p.Age, Skills: skills}
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeStoreError translates repository sentinel errors to HTTP statuses.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
	case errors.Is(err, repository.ErrDuplicateName):
		writeError(w, http.StatusConflict, "duplicate_name", Wrap(op, err))
	case errors.Is(err, repository.ErrRosterFull):
		writeError(w, http.StatusConflict, "roster_full", Wrap(op, err))
	case errors.Is(err, repository.ErrEmptyName):
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
