package testroster

// HTTP status code constants.
const (
	StatusOK      = 200
	StatusCreated = 201
)

// Runner configuration constants.
const (
	PercentageMultiplier = 100
	BruteForceMaxPlayers = 8
)
