// Package scoring computes role-fit percentages for players.
package scoring

import (
	"math"

	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/internal/domain/model"
)

// Scoring constants.
const (
	maxPercentage     = 100
	maxSkillValue     = 100
	maxRoleBonus      = 25
	maxSecondaryBonus = 15
)

// Diminishing-returns knees. Transformed value grows at full rate up to
// the first knee, then at 0.8x, then at 0.6x.
const (
	firstKnee      = 70
	secondKnee     = 85
	firstKneeRate  = 0.8
	secondKneeRate = 0.6
	secondKneeBase = 82 // firstKnee + (secondKnee-firstKnee)*firstKneeRate
)

// Option applies a configuration option to the FitScorer.
type Option func(*FitScorer)

// WithCatalog sets the role catalog used for scoring.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *FitScorer) {
		if c != nil {
			s.catalog = c
		}
	}
}

// FitScorer computes, for a player, a fit percentage per catalog role.
// It is stateless with respect to rosters: every call is a pure
// function of the player record and the immutable catalog.
type FitScorer struct {
	catalog *catalog.Catalog
}

// NewFitScorer creates a scorer over the built-in catalog unless
// overridden with WithCatalog.
func NewFitScorer(opts ...Option) *FitScorer {
	s := &FitScorer{catalog: catalog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog exposes the catalog this scorer evaluates against.
func (s *FitScorer) Catalog() *catalog.Catalog {
	return s.catalog
}

// RoleFits returns the fit percentage in [0,100] for every role.
// Total over any well-typed input: missing skills read 0 and any age is
// bucketed, so no error path exists.
func (s *FitScorer) RoleFits(p model.Player) map[string]float64 {
	fits := make(map[string]float64, s.catalog.RoleCount())
	for _, role := range s.catalog.Roles() {
		fits[role.Name] = roleFit(p, role)
	}
	return fits
}

// RoleFit computes the fit percentage for a single role. Unknown role
// names score 0.
func (s *FitScorer) RoleFit(p model.Player, roleName string) float64 {
	role, ok := s.catalog.Role(roleName)
	if !ok {
		return 0
	}
	return roleFit(p, role)
}

func roleFit(p model.Player, role catalog.Role) float64 {
	base := coverage(p, role.Primary) * AgeMultiplier(p.Age)
	total := base + roleBonus(p, role.Bonus) + secondaryBonus(p, role.Secondary)

	clamped := math.Max(0, math.Min(total, maxPercentage))
	return math.Round(clamped*100) / 100
}

// coverage sums transformed skill values and expresses them as a
// percentage of the raw maximum. The denominator stays at 100 per skill
// even though the transform tops out at 91, so coverage alone never
// reaches 100; role and secondary bonuses make up the gap.
func coverage(p model.Player, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}
	var sum float64
	for _, name := range skills {
		sum += DiminishingReturns(p.Skill(name))
	}
	return sum / float64(len(skills)*maxSkillValue) * maxPercentage
}

// roleBonus grants the rule's flat value only when every raw threshold
// is met. The value never exceeds maxRoleBonus.
func roleBonus(p model.Player, rule catalog.BonusRule) float64 {
	if len(rule.Thresholds) == 0 {
		return 0
	}
	for _, t := range rule.Thresholds {
		if p.Skill(t.Skill) < t.Min {
			return 0
		}
	}
	return math.Min(rule.Value, maxRoleBonus)
}

// secondaryBonus scales secondary coverage into [0, maxSecondaryBonus].
func secondaryBonus(p model.Player, skills []string) float64 {
	if len(skills) == 0 {
		return 0
	}
	return math.Min(maxSecondaryBonus, coverage(p, skills)/maxPercentage*maxSecondaryBonus)
}

// DiminishingReturns compresses a raw skill value so extreme investment
// saturates: identity up to 70, then 0.8x to 85, then 0.6x. Strictly
// increasing, continuous, piecewise linear; transform(100) = 91.
func DiminishingReturns(value int) float64 {
	v := float64(value)
	switch {
	case v <= firstKnee:
		return v
	case v <= secondKnee:
		return firstKnee + (v-firstKnee)*firstKneeRate
	default:
		return secondKneeBase + (v-secondKnee)*secondKneeRate
	}
}

// AgeMultiplier is the prime-years step curve. Deliberately not
// monotone: under-18 (0.90) sits above over-28 (0.88).
func AgeMultiplier(age int) float64 {
	switch {
	case age >= 18 && age <= 22:
		return 1.0
	case age >= 23 && age <= 25:
		return 0.98
	case age >= 26 && age <= 28:
		return 0.95
	case age < 18:
		return 0.90
	default:
		return 0.88
	}
}

// BestRole returns the highest-scoring role from a fit map, breaking
// score ties by name so the annotation is stable across runs.
func BestRole(fits map[string]float64) (string, float64) {
	bestName, bestScore := "", math.Inf(-1)
	for name, score := range fits {
		if score > bestScore || (score == bestScore && name < bestName) {
			bestName, bestScore = name, score
		}
	}
	if bestName == "" {
		return "", 0
	}
	return bestName, bestScore
}
