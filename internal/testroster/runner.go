package testroster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/namathieu/lineup/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
	outputPermission    = 0600
)

// Run executes the complete roster test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting lineup roster test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("players", config.NumPlayers),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verify", config.Verify),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate players
	players, err := generatePlayers(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("player generation failed: %w", err)
	}

	// Step 3: Submit players concurrently
	if err := submitPlayers(ctx, config, players, stats); err != nil {
		return fmt.Errorf("player submission failed: %w", err)
	}

	// Step 4: Request the optimal lineup
	eval, err := getEvaluation(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("lineup evaluation failed: %w", err)
	}
	displayLineup(eval, config.Verbose)

	// Step 5: Verify results
	if err := verifyResults(ctx, config, players, eval); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 6: Save generated players to file
	if err := savePlayersToFile(ctx, config, players); err != nil {
		logger.Get().Warn(ctx, "failed to save players to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// savePlayersToFile saves the generated players to a JSON file.
func savePlayersToFile(ctx context.Context, config *Config, players []Player) error {
	if len(players) == 0 {
		return fmt.Errorf("no players to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_roster_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(players, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}
	if err := os.WriteFile(filename, data, outputPermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "players saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate float64
	if stats.PlayersSubmitted > 0 {
		successRate = float64(stats.PlayersSuccessful) / float64(stats.PlayersSubmitted) * PercentageMultiplier
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.String("runID", stats.RunID),
		logger.Int("playersGenerated", stats.PlayersGenerated),
		logger.Int("playersSubmitted", stats.PlayersSubmitted),
		logger.Int("playersSuccessful", stats.PlayersSuccessful),
		logger.Int("playersFailed", stats.PlayersFailed),
		logger.Int("assignedRoles", stats.AssignedRoles),
		logger.Int("vacantRoles", stats.VacantRoles),
		logger.Int("benchSize", stats.BenchSize),
		logger.Float64("lineupTotal", stats.LineupTotal),
		logger.Float64("synergy", stats.Synergy),
		logger.String("rating", stats.Rating),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate))
}
