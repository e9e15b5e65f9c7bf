package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/namathieu/lineup/internal/domain/model"
)

// RosterStore is an in-memory Store: an insertion-ordered slice plus a
// name index. Reads hand out copies so callers never alias the stored
// skill maps.
type RosterStore struct {
	mu      sync.RWMutex
	players model.Roster
	index   map[string]int
	maxSize int
}

// NewRosterStore creates an empty roster store.
func NewRosterStore(opts ...Option) *RosterStore {
	s := &RosterStore{index: make(map[string]int)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a player to the roster.
func (s *RosterStore) Add(_ context.Context, p model.Player) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	if s.maxSize > 0 && len(s.players) >= s.maxSize {
		return ErrRosterFull
	}
	s.index[name] = len(s.players)
	s.players = append(s.players, p.Clone())
	return nil
}

// Update replaces the player stored under name in place.
func (s *RosterStore) Update(_ context.Context, name string, p model.Player) error {
	newName := strings.TrimSpace(p.Name)
	if newName == "" {
		return ErrEmptyName
	}
	p.Name = newName

	s.mu.Lock()
	defer s.mu.Unlock()
	i, exists := s.index[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if newName != name {
		if _, taken := s.index[newName]; taken {
			return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
		}
		delete(s.index, name)
		s.index[newName] = i
	}
	s.players[i] = p.Clone()
	return nil
}

// Remove deletes a player by name, closing the gap to keep order.
func (s *RosterStore) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, exists := s.index[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.index, name)
	s.players = append(s.players[:i], s.players[i+1:]...)
	for j := i; j < len(s.players); j++ {
		s.index[s.players[j].Name] = j
	}
	return nil
}

// Get returns a copy of the player stored under name.
func (s *RosterStore) Get(_ context.Context, name string) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, exists := s.index[name]
	if !exists {
		return model.Player{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s.players[i].Clone(), nil
}

// List returns a copy of the roster in insertion order.
func (s *RosterStore) List(_ context.Context) model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players.Clone()
}

// Replace swaps the whole roster wholesale.
func (s *RosterStore) Replace(_ context.Context, roster model.Roster) error {
	incoming := make(model.Roster, len(roster))
	index := make(map[string]int, len(roster))
	for i, p := range roster {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return ErrEmptyName
		}
		if _, dup := index[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		index[name] = i
		incoming[i] = p.Clone()
		incoming[i].Name = name
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = incoming
	s.index = index
	return nil
}

// Count returns the number of players in the roster.
func (s *RosterStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
