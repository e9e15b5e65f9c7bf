// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/namathieu/lineup/internal/adapters/repository"
	"github.com/namathieu/lineup/internal/domain/assignment"
	"github.com/namathieu/lineup/internal/domain/catalog"
	"github.com/namathieu/lineup/internal/domain/model"
	"github.com/namathieu/lineup/internal/domain/scoring"
	"github.com/namathieu/lineup/pkg/logger"
	"github.com/namathieu/lineup/pkg/metrics"
)

// Service implements the API dependencies for the roster system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	cat    *catalog.Catalog
	scorer *scoring.FitScorer
	solver *assignment.Solver

	// Configuration
	catalogPath   string
	snapshotPath  string
	maxRosterSize int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCatalog sets a pre-built role catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Service) {
		if cat != nil {
			s.cat = cat
		}
	}
}

// WithCatalogPath points the service at a YAML catalog file loaded on
// Start. Takes precedence over WithCatalog.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithSnapshotPath sets the default roster snapshot file.
func WithSnapshotPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.snapshotPath = path
		}
	}
}

// WithMaxRosterSize caps the number of players held in memory.
func WithMaxRosterSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRosterSize = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		snapshotPath:  "roster.json",
		maxRosterSize: 200,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components. A broken catalog
// fails the start so misconfiguration never reaches the serving path.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting roster service...")

	// Resolve the role catalog
	if s.catalogPath != "" {
		cat, err := catalog.Load(s.catalogPath)
		if err != nil {
			return err
		}
		s.cat = cat
		s.logger.Info(ctx, "loaded catalog from file", logger.String("path", s.catalogPath))
	} else if s.cat == nil {
		s.cat = catalog.Default()
	}

	// Initialize components
	s.store = repository.NewRosterStore(
		repository.WithMaxSize(s.maxRosterSize),
	)
	s.scorer = scoring.NewFitScorer(
		scoring.WithCatalog(s.cat),
	)
	s.solver = assignment.NewSolver(
		assignment.WithScorer(s.scorer),
	)

	s.started = true
	s.logger.Info(ctx, "roster service started",
		logger.Int("roles", s.cat.RoleCount()),
		logger.Int("skills", len(s.cat.Skills())),
		logger.Int("maxRosterSize", s.maxRosterSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping roster service...")
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

// Catalog exposes the active role catalog.
func (s *Service) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// AddPlayer appends a player to the roster.
func (s *Service) AddPlayer(ctx context.Context, p model.Player) error {
	if err := s.store.Add(ctx, p); err != nil {
		return err
	}
	metrics.RecordPlayerAdded()
	metrics.UpdateRosterSize(s.store.Count(ctx))
	s.logger.Info(ctx, "player added",
		logger.String("name", p.Name),
		logger.Int("age", p.Age),
	)
	return nil
}

// UpdatePlayer replaces the player stored under name.
func (s *Service) UpdatePlayer(ctx context.Context, name string, p model.Player) error {
	if err := s.store.Update(ctx, name, p); err != nil {
		return err
	}
	s.logger.Info(ctx, "player updated",
		logger.String("name", name),
		logger.String("newName", p.Name),
	)
	return nil
}

// RemovePlayer deletes a player by name.
func (s *Service) RemovePlayer(ctx context.Context, name string) error {
	if err := s.store.Remove(ctx, name); err != nil {
		return err
	}
	metrics.RecordPlayerRemoved()
	metrics.UpdateRosterSize(s.store.Count(ctx))
	s.logger.Info(ctx, "player removed", logger.String("name", name))
	return nil
}

// Player returns a copy of the player stored under name.
func (s *Service) Player(ctx context.Context, name string) (model.Player, error) {
	return s.store.Get(ctx, name)
}

// Roster returns a copy of the roster in insertion order.
func (s *Service) Roster(ctx context.Context) (model.Roster, error) {
	return s.store.List(ctx), nil
}

// Fits computes per-role fit percentages for a player.
func (s *Service) Fits(p model.Player) map[string]float64 {
	start := time.Now()
	fits := s.scorer.RoleFits(p)
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	return fits
}

// Evaluate computes the optimal lineup for the current roster.
func (s *Service) Evaluate(ctx context.Context) (assignment.Result, error) {
	roster := s.store.List(ctx)

	start := time.Now()
	res, _ := s.solver.Assign(roster)
	solveMs := float64(time.Since(start).Microseconds()) / 1000.0

	metrics.RecordEvaluation()
	metrics.RecordSolveLatency(solveMs)
	s.logger.Info(ctx, "lineup evaluated",
		logger.Int("players", len(roster)),
		logger.Int("benched", len(res.Bench)),
		logger.Float64("total", res.Total),
	)
	return res, nil
}

// SaveSnapshot writes the roster to path, or to the configured snapshot
// path when path is empty. Returns the number of players written.
func (s *Service) SaveSnapshot(ctx context.Context, path string) (int, error) {
	if path == "" {
		path = s.snapshotPath
	}
	roster := s.store.List(ctx)
	if err := repository.SaveSnapshot(path, roster); err != nil {
		metrics.RecordSnapshotError()
		return 0, err
	}
	metrics.RecordSnapshotSave()
	s.logger.Info(ctx, "roster saved",
		logger.String("path", path),
		logger.Int("players", len(roster)),
	)
	return len(roster), nil
}

// LoadSnapshot replaces the roster with the contents of path, or of the
// configured snapshot path when path is empty. On failure the in-memory
// roster is left untouched.
func (s *Service) LoadSnapshot(ctx context.Context, path string) (int, error) {
	if path == "" {
		path = s.snapshotPath
	}
	roster, err := repository.LoadSnapshot(path)
	if err != nil {
		metrics.RecordSnapshotError()
		return 0, err
	}
	if err := s.store.Replace(ctx, roster); err != nil {
		metrics.RecordSnapshotError()
		return 0, err
	}
	metrics.RecordSnapshotLoad()
	metrics.UpdateRosterSize(s.store.Count(ctx))
	s.logger.Info(ctx, "roster loaded",
		logger.String("path", path),
		logger.Int("players", len(roster)),
	)
	return len(roster), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"maxRosterSize": s.maxRosterSize,
		"snapshotPath":  s.snapshotPath,
	}

	if s.started {
		players := s.store.Count(ctx)
		stats["players"] = players
		stats["roles"] = s.cat.RoleCount()

		// Update metrics
		metrics.UpdateRosterSize(players)
	}

	return stats
}
