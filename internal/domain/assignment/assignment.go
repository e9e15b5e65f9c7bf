// Package assignment solves the optimal player-to-role lineup as an
// exact minimum-cost bipartite matching.
package assignment

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/namathieu/lineup/internal/domain/model"
	"github.com/namathieu/lineup/internal/domain/scoring"
)

// maxFit is the top of the fit-percentage scale; profits are inverted
// against it to obtain costs.
const maxFit = 100

// Option applies a configuration option to the Solver.
type Option func(*Solver)

// WithScorer sets the fit scorer used to weight the matching.
func WithScorer(s *scoring.FitScorer) Option {
	return func(sv *Solver) {
		if s != nil {
			sv.scorer = s
		}
	}
}

// Slot pairs an assigned player with their fit score for the role.
type Slot struct {
	Player model.Player
	Score  float64
}

// Result is the solved lineup: every role maps to a slot or nil
// (vacant), and Bench holds the roster players left unassigned.
// Assigned players and bench partition the roster.
type Result struct {
	Lineup map[string]*Slot
	Bench  []model.Player
	Total  float64
}

// Fits exposes the per-player fit maps computed during the solve so
// callers can annotate bench players without rescoring.
type Fits map[string]map[string]float64

// Solver computes an optimal one-to-one player-to-role pairing
// maximizing the summed fit percentage. It holds no roster state;
// every Assign call is independent.
type Solver struct {
	scorer *scoring.FitScorer
}

// NewSolver creates a solver over a default scorer unless overridden.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{scorer: scoring.NewFitScorer()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scorer exposes the scorer backing this solver.
func (s *Solver) Scorer() *scoring.FitScorer {
	return s.scorer
}

// Assign computes the optimal lineup for the roster. An empty roster
// yields every role vacant and an empty bench; a roster smaller than
// the role count leaves the excess roles vacant. Never fails: the
// matching is total over any roster size.
func (s *Solver) Assign(roster model.Roster) (Result, Fits) {
	roles := s.scorer.Catalog().RoleNames()

	fits := make(Fits, len(roster))
	for _, p := range roster {
		fits[p.Name] = s.scorer.RoleFits(p)
	}

	res := Result{Lineup: make(map[string]*Slot, len(roles))}
	for _, role := range roles {
		res.Lineup[role] = nil
	}
	if len(roster) == 0 {
		res.Bench = []model.Player{}
		return res, fits
	}

	// Square cost matrix: rows are players, columns are roles, padded
	// with dummies so the matching is perfect. Dummy cells carry zero
	// profit, i.e. maximum cost, and are discarded on interpretation.
	n := max(len(roster), len(roles))
	cost := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			profit := 0.0
			if i < len(roster) && j < len(roles) {
				profit = fits[roster[i].Name][roles[j]]
			}
			cost.Set(i, j, maxFit-profit)
		}
	}

	assigned := solve(cost)
	res.Bench = make([]model.Player, 0, len(roster))
	for i, p := range roster {
		j := assigned[i]
		if j >= len(roles) {
			res.Bench = append(res.Bench, p)
			continue
		}
		role := roles[j]
		score := fits[p.Name][role]
		res.Lineup[role] = &Slot{Player: p, Score: score}
		res.Total += score
	}
	return res, fits
}

// solve runs the Jonker-Volgenant shortest-augmenting-path algorithm
// over the square cost matrix and returns the column assigned to each
// row of a minimum-cost perfect matching. O(n^3) with dual potentials,
// deterministic for a given matrix.
func solve(cost *mat.Dense) []int {
	n, _ := cost.Dims()

	// 1-based internals: index 0 is the virtual free column.
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	match := make([]int, n+1) // column -> assigned row, 0 when free
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		for {
			used[j0] = true
			i0, j1 := match[j0], 0
			delta := math.Inf(1)
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost.At(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}
		// Augment along the recorded alternating path.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for j := 1; j <= n; j++ {
		rowToCol[match[j]-1] = j - 1
	}
	return rowToCol
}
