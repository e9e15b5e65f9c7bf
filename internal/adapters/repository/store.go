// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/namathieu/lineup/internal/domain/model"
)

// Store provides read/write access to the in-memory roster. Players
// are kept in insertion order and keyed uniquely by name.
type Store interface {
	// Add appends a player. Returns ErrDuplicateName if the name is
	// already taken, ErrEmptyName on a blank name.
	Add(ctx context.Context, p model.Player) error

	// Update replaces the player stored under name, preserving its
	// roster position. Renames are allowed as long as the new name
	// stays unique. Returns ErrNotFound for unknown names.
	Update(ctx context.Context, name string, p model.Player) error

	// Remove deletes a player by name. Returns ErrNotFound if absent.
	Remove(ctx context.Context, name string) error

	// Get returns a copy of the player stored under name.
	Get(ctx context.Context, name string) (model.Player, error)

	// List returns a copy of the roster in insertion order.
	List(ctx context.Context) model.Roster

	// Replace swaps the whole roster wholesale, e.g. after a snapshot
	// load. The incoming roster must itself honor name uniqueness.
	Replace(ctx context.Context, roster model.Roster) error

	// Count returns the number of players in the roster.
	Count(ctx context.Context) int
}
