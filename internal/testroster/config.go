package testroster

import "time"

// Config holds configuration for the roster test
type Config struct {
	BaseURL    string        // Base URL of the service
	NumPlayers int           // Number of players to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output file for generated players
	LogFile    string        // Log file for test output
	Verbose    bool          // Enable verbose logging
	Verify     bool          // Brute-force check of lineup optimality
}

// Player represents a player to be submitted
type Player struct {
	Name   string         `json:"name"`
	Age    int            `json:"age"`
	Skills map[string]int `json:"skills"`
}

// LineupSlot represents one role of the returned lineup
type LineupSlot struct {
	Role   string  `json:"role"`
	Player *Player `json:"player,omitempty"`
	Score  float64 `json:"score"`
	Label  string  `json:"label,omitempty"`
}

// Evaluation represents the response from POST /evaluation
type Evaluation struct {
	Lineup          []LineupSlot `json:"lineup"`
	Bench           []Player     `json:"bench"`
	Total           float64      `json:"total"`
	Synergy         float64      `json:"synergy"`
	Rating          string       `json:"rating"`
	Recommendations []string     `json:"recommendations"`
}

// AckResponse represents the response from player submission
type AckResponse struct {
	Status string `json:"status"`
}

// Stats holds test statistics
type Stats struct {
	RunID             string
	PlayersGenerated  int
	PlayersSubmitted  int
	PlayersSuccessful int
	PlayersFailed     int
	AssignedRoles     int
	VacantRoles       int
	BenchSize         int
	LineupTotal       float64
	Synergy           float64
	Rating            string
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
