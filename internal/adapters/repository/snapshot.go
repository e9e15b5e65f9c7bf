package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/namathieu/lineup/internal/domain/model"
)

// Snapshot file permissions.
const snapshotFilePermission = 0o600

// Raw skill value bounds accepted from a snapshot.
const (
	minSkillValue = 0
	maxSkillValue = 100
)

// SaveSnapshot serializes the roster to path as an order-preserving
// JSON array of player records. Last writer wins; no locking.
func SaveSnapshot(path string, roster model.Roster) error {
	const op = "repository.save_snapshot"

	data, err := json.MarshalIndent(roster, "", "    ")
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrSnapshotWrite, err)
	}
	if err := os.WriteFile(path, data, snapshotFilePermission); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrSnapshotWrite, err)
	}
	return nil
}

// LoadSnapshot reads and validates a roster snapshot. Any malformed
// record fails the whole load; callers keep their in-memory roster
// untouched on error.
func LoadSnapshot(path string) (model.Roster, error) {
	const op = "repository.load_snapshot"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrSnapshotRead, err)
	}

	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrSnapshotMalformed, err)
	}

	seen := make(map[string]struct{}, len(roster))
	for i, p := range roster {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: %w: record %d has no name", op, ErrSnapshotMalformed, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%s: %w: duplicate name %q", op, ErrSnapshotMalformed, name)
		}
		seen[name] = struct{}{}
		for skill, v := range p.Skills {
			if v < minSkillValue || v > maxSkillValue {
				return nil, fmt.Errorf("%s: %w: %q skill %q out of range: %d", op, ErrSnapshotMalformed, name, skill, v)
			}
		}
	}
	return roster, nil
}
