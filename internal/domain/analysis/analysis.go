// Package analysis derives team-level summaries from a solved lineup:
// synergy average, rating tier, fit labels, and coaching
// recommendations.
package analysis

import (
	"fmt"
	"sort"

	"github.com/namathieu/lineup/internal/domain/assignment"
	"github.com/namathieu/lineup/internal/domain/catalog"
)

// Rating tier thresholds on the average assigned fit.
const (
	tierS = 85
	tierA = 75
	tierB = 65
	tierC = 55
)

// Fit label thresholds on a single assigned score.
const (
	labelExcellent = 85
	labelGood      = 75
	labelAverage   = 60
)

// Recommendation thresholds.
const (
	weakPrimarySkill   = 65
	lowFitScore        = 70
	successionAge      = 28
	developmentAge     = 18
	maxRecommendations = 8
)

// Synergy returns the average fit over assigned roles and how many
// roles are filled. Zero assigned roles yields (0, 0).
func Synergy(res assignment.Result) (avg float64, assigned int) {
	var total float64
	for _, slot := range res.Lineup {
		if slot == nil {
			continue
		}
		total += slot.Score
		assigned++
	}
	if assigned == 0 {
		return 0, 0
	}
	return total / float64(assigned), assigned
}

// TeamRating maps an average synergy to a tier label.
func TeamRating(avg float64) string {
	switch {
	case avg >= tierS:
		return "S-Tier (Championship Level)"
	case avg >= tierA:
		return "A-Tier (Playoff Contender)"
	case avg >= tierB:
		return "B-Tier (Competitive)"
	case avg >= tierC:
		return "C-Tier (Developing)"
	default:
		return "D-Tier (Needs Development)"
	}
}

// FitLabel maps a single fit score to a quality label.
func FitLabel(score float64) string {
	switch {
	case score >= labelExcellent:
		return "Excellent"
	case score >= labelGood:
		return "Good"
	case score >= labelAverage:
		return "Average"
	default:
		return "Poor"
	}
}

// Recommendations inspects a solved lineup and returns up to
// maxRecommendations coaching notes: weak primary skills, low-fit
// assignments, vacant roles, and age planning. Roles are walked in
// catalog order so output is stable.
func Recommendations(res assignment.Result, cat *catalog.Catalog) []string {
	recs := make([]string, 0, maxRecommendations)

	for _, role := range cat.Roles() {
		slot := res.Lineup[role.Name]
		if slot == nil {
			recs = append(recs, fmt.Sprintf("%s position is vacant and needs immediate attention.", role.Name))
			continue
		}
		weak := weakPrimaries(slot, role)
		if len(weak) > 0 {
			recs = append(recs, fmt.Sprintf("%s (%s) needs improvement in primary skills: %s.",
				slot.Player.Name, role.Name, joinSkills(weak)))
		}
		if slot.Score < lowFitScore {
			recs = append(recs, fmt.Sprintf("Consider finding a more suitable %s player; %s has %.1f%% fit.",
				role.Name, slot.Player.Name, slot.Score))
		}
	}

	for _, role := range cat.Roles() {
		slot := res.Lineup[role.Name]
		if slot == nil {
			continue
		}
		switch age := slot.Player.Age; {
		case age > successionAge:
			recs = append(recs, fmt.Sprintf("Plan succession for %s (%s, age %d); focus on developing backups.",
				slot.Player.Name, role.Name, age))
		case age < developmentAge:
			recs = append(recs, fmt.Sprintf("%s (%s, age %d) shows promise but needs focused training in primary skills.",
				slot.Player.Name, role.Name, age))
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

type weakSkill struct {
	name  string
	value int
}

func weakPrimaries(slot *assignment.Slot, role catalog.Role) []weakSkill {
	var weak []weakSkill
	for _, s := range role.Primary {
		if v := slot.Player.Skill(s); v < weakPrimarySkill {
			weak = append(weak, weakSkill{name: s, value: v})
		}
	}
	sort.Slice(weak, func(i, j int) bool { return weak[i].value < weak[j].value })
	return weak
}

func joinSkills(weak []weakSkill) string {
	out := ""
	for i, w := range weak {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%d)", w.name, w.value)
	}
	return out
}
