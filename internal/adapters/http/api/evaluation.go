// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/namathieu/lineup/internal/domain/analysis"
	"github.com/namathieu/lineup/internal/domain/assignment"
	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/internal/domain/model"
	"github.com/namathieu/lineup/internal/domain/scoring"
)

// EvaluationDependencies defines the interface for lineup evaluation.
type EvaluationDependencies interface {
	Roster(ctx context.Context) (model.Roster, error)
	Fits(p model.Player) map[string]float64
	Evaluate(ctx context.Context) (assignment.Result, error)
}

// EvaluationHandler handles lineup evaluation requests.
type EvaluationHandler struct {
	deps EvaluationDependencies
	cat  *catalog.Catalog
}

// NewEvaluationHandler creates a new evaluation handler.
func NewEvaluationHandler(deps EvaluationDependencies, cat *catalog.Catalog) *EvaluationHandler {
	return &EvaluationHandler{deps: deps, cat: cat}
}

// lineupSlot is one role of the optimal lineup. A nil player means the
// role is vacant.
type lineupSlot struct {
	Role   string        `json:"role"`
	Player *model.Player `json:"player,omitempty"`
	Score  float64       `json:"score"`
	Label  string        `json:"label,omitempty"`
}

type evaluationResponse struct {
	Lineup          []lineupSlot  `json:"lineup"`
	Bench           []rosterEntry `json:"bench"`
	Total           float64       `json:"total"`
	Synergy         float64       `json:"synergy"`
	Rating          string        `json:"rating"`
	Recommendations []string      `json:"recommendations"`
}

// HandlePostEvaluation handles POST /evaluation requests.
func (h *EvaluationHandler) HandlePostEvaluation(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_evaluation"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	roster, err := h.deps.Roster(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	// The solver handles short rosters fine; rejecting them here is a
	// policy choice so callers get an actionable message instead of a
	// lineup with holes.
	if len(roster) < h.cat.RoleCount() {
		writeError(w, http.StatusUnprocessableEntity, "short_roster", NewKind(op, ErrShortRoster))
		return
	}
	res, err := h.deps.Evaluate(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	synergy, _ := analysis.Synergy(res)
	resp := evaluationResponse{
		Lineup:          make([]lineupSlot, 0, h.cat.RoleCount()),
		Bench:           make([]rosterEntry, 0, len(res.Bench)),
		Total:           res.Total,
		Synergy:         synergy,
		Rating:          analysis.TeamRating(synergy),
		Recommendations: analysis.Recommendations(res, h.cat),
	}
	for _, role := range h.cat.Roles() {
		slot := lineupSlot{Role: role.Name}
		if s := res.Lineup[role.Name]; s != nil {
			p := s.Player
			slot.Player = &p
			slot.Score = s.Score
			slot.Label = analysis.FitLabel(s.Score)
		}
		resp.Lineup = append(resp.Lineup, slot)
	}
	for _, p := range res.Bench {
		fits := h.deps.Fits(p)
		best, score := scoring.BestRole(fits)
		resp.Bench = append(resp.Bench, rosterEntry{Player: p, BestRole: best, BestFit: score})
	}
	writeJSON(w, http.StatusOK, resp)
}
