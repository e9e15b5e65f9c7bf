package testroster

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/namathieu/lineup/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "test_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the roster test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Lineup Roster Test Tool
=======================

A concurrent tool for exercising the lineup roster service: it fills the
roster with generated players, requests the optimal lineup and checks the
result.

Usage:
  go run cmd/test-roster/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -players int
        Number of players to generate and submit (default 8)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for generated players (default: generated_roster_TIMESTAMP.json)
  -log string
        Log file for test output (default: test_log_TIMESTAMP.log)
  -verify
        Brute-force check that the returned lineup total is optimal
        (only for rosters of 8 players or fewer)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/test-roster/main.go

  # Fill a large roster
  go run cmd/test-roster/main.go -players 100 -workers 16

  # Small roster with optimality verification
  go run cmd/test-roster/main.go -players 6 -verify
`)
}
