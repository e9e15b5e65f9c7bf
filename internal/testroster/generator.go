package testroster

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/pkg/logger"
)

// Name pool used to build player names; a numeric suffix keeps them unique.
var namePool = []string{
	"Phoenix", "Shadow", "Lightning", "Storm", "Blaze", "Frost", "Nova", "Titan",
	"Viper", "Falcon", "Dragon", "Wolf", "Raven", "Eagle", "Tiger", "Shark",
}

// Constants for random player generation.
const (
	minAge       = 17
	ageRange     = 12 // ages 17 through 28
	minSkill     = 30
	skillRange   = 70 // skill values 30 through 99
	strongSkill  = 80
	strongRange  = 20 // boosted values 80 through 99
	strongChance = 4  // roughly one in four players gets a strong profile
)

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generatePlayers creates the specified number of players with unique names.
func generatePlayers(ctx context.Context, config *Config, stats *Stats) ([]Player, error) {
	logger.Get().Info(ctx, "generating players with unique names", logger.Int("numPlayers", config.NumPlayers))

	stats.RunID = uuid.New().String()
	skills := catalog.Default().Skills()

	players := make([]Player, config.NumPlayers)
	for i := range players {
		players[i] = generateSinglePlayer(i, skills)
	}

	stats.PlayersGenerated = len(players)
	logger.Get().Info(ctx, "generated players successfully",
		logger.String("runID", stats.RunID),
		logger.Int("count", len(players)))

	return players, nil
}

// generateSinglePlayer creates one player. The index keeps names unique:
// the pool repeats with an increasing numeric suffix.
func generateSinglePlayer(index int, skills []string) Player {
	base := namePool[index%len(namePool)]
	suffix := index/len(namePool) + 1
	name := base + strconv.Itoa(suffix)

	// A slice of players gets a strong profile so lineups and bonus
	// thresholds are actually exercised.
	strong := randomInt(strongChance) == 0

	values := make(map[string]int, len(skills))
	for _, skill := range skills {
		if strong {
			values[skill] = strongSkill + randomInt(strongRange)
		} else {
			values[skill] = minSkill + randomInt(skillRange)
		}
	}

	return Player{
		Name:   name,
		Age:    minAge + randomInt(ageRange),
		Skills: values,
	}
}
