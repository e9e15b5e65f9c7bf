package testroster

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/internal/domain/model"
	"github.com/namathieu/lineup/internal/domain/scoring"
)

const totalTolerance = 1e-6

// verifyResults checks the returned lineup for structural validity and,
// for small rosters, brute-forces the optimal total locally to confirm
// the service found it.
func verifyResults(ctx context.Context, config *Config, players []Player, eval *Evaluation) error {
	log.Println("🔍 Verifying results...")

	if err := verifyLineupValidity(players, eval); err != nil {
		return fmt.Errorf("lineup validity check failed: %w", err)
	}
	log.Println("✅ Lineup validity verified")

	if config.Verify {
		if len(players) > BruteForceMaxPlayers {
			log.Printf("⚠️  Skipping brute-force check: %d players exceeds the %d-player bound",
				len(players), BruteForceMaxPlayers)
		} else if err := verifyOptimality(players, eval); err != nil {
			return fmt.Errorf("optimality check failed: %w", err)
		} else {
			log.Println("✅ Lineup optimality verified against brute force")
		}
	}

	log.Println("✅ Result verification completed")
	return nil
}

// verifyLineupValidity checks that every assigned player was submitted,
// appears in at most one role, and that lineup plus bench partition the
// roster.
func verifyLineupValidity(players []Player, eval *Evaluation) error {
	submitted := make(map[string]bool, len(players))
	for _, p := range players {
		submitted[p.Name] = true
	}

	seen := make(map[string]bool)
	assigned := 0
	for _, slot := range eval.Lineup {
		if slot.Player == nil {
			continue
		}
		name := slot.Player.Name
		if !submitted[name] {
			return fmt.Errorf("lineup contains unknown player %q", name)
		}
		if seen[name] {
			return fmt.Errorf("player %q assigned to more than one role", name)
		}
		seen[name] = true
		assigned++
		if slot.Score < 0 || slot.Score > 100 {
			return fmt.Errorf("player %q has out-of-range score %.2f", name, slot.Score)
		}
	}

	for _, p := range eval.Bench {
		if !submitted[p.Name] {
			return fmt.Errorf("bench contains unknown player %q", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("player %q both assigned and benched", p.Name)
		}
		seen[p.Name] = true
	}

	if assigned+len(eval.Bench) != len(players) {
		return fmt.Errorf("lineup and bench cover %d players, submitted %d",
			assigned+len(eval.Bench), len(players))
	}
	return nil
}

// verifyOptimality recomputes the best possible lineup total by trying
// every role-to-player combination with the local scorer.
func verifyOptimality(players []Player, eval *Evaluation) error {
	cat := catalog.Default()
	scorer := scoring.NewFitScorer(scoring.WithCatalog(cat))

	roles := cat.RoleNames()
	fits := make([]map[string]float64, len(players))
	for i, p := range players {
		fits[i] = scorer.RoleFits(model.Player{Name: p.Name, Age: p.Age, Skills: p.Skills})
	}

	used := make([]bool, len(players))
	best := bruteForce(roles, fits, used, 0)

	if math.Abs(best-eval.Total) > totalTolerance {
		return fmt.Errorf("service total %.4f differs from brute-force optimum %.4f", eval.Total, best)
	}
	return nil
}

// bruteForce enumerates all assignments of the remaining roles. Leaving a
// role vacant is allowed so short rosters verify too.
func bruteForce(roles []string, fits []map[string]float64, used []bool, roleIdx int) float64 {
	if roleIdx == len(roles) {
		return 0
	}
	// Vacant is always an option; fits are non-negative so it only wins
	// when no players remain.
	best := bruteForce(roles, fits, used, roleIdx+1)
	for i := range fits {
		if used[i] {
			continue
		}
		used[i] = true
		total := fits[i][roles[roleIdx]] + bruteForce(roles, fits, used, roleIdx+1)
		used[i] = false
		if total > best {
			best = total
		}
	}
	return best
}

// displayLineup prints the returned lineup, bench and recommendations.
func displayLineup(eval *Evaluation, verbose bool) {
	log.Printf("🏆 Optimal lineup (total %.2f, synergy %.2f, rating %s):",
		eval.Total, eval.Synergy, eval.Rating)
	for _, slot := range eval.Lineup {
		if slot.Player != nil {
			log.Printf("   %-12s %s - %.2f (%s)", slot.Role, slot.Player.Name, slot.Score, slot.Label)
		} else {
			log.Printf("   %-12s VACANT", slot.Role)
		}
	}

	if len(eval.Bench) > 0 {
		log.Printf("🪑 Bench (%d players)", len(eval.Bench))
		if verbose {
			for _, p := range eval.Bench {
				log.Printf("   %s (age %d)", p.Name, p.Age)
			}
		}
	}

	for _, rec := range eval.Recommendations {
		log.Printf("💡 %s", rec)
	}
}
