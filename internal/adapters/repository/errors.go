package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound      = errors.New("player not found")
	ErrDuplicateName = errors.New("player name already exists")
	ErrEmptyName     = errors.New("player name must not be empty")
	ErrRosterFull    = errors.New("roster is full")

	ErrSnapshotRead      = errors.New("roster snapshot read failed")
	ErrSnapshotWrite     = errors.New("roster snapshot write failed")
	ErrSnapshotMalformed = errors.New("roster snapshot malformed")
)
