// Package memory implements the roster repository in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/uiyort/skills-getting-started-with-github-copilot/config"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/seed"

	"go.uber.org/zap"
)

// Store keeps the activity roster behind a single lock. Every check-and-mutate
// happens under the write lock so participants stay unique.
type Store struct {
	log *zap.SugaredLogger
	cfg config.RosterConfig

	mu         sync.RWMutex
	order      []string
	activities map[string]*entities.Activity
}

// New creates an empty Store; OnStart loads the seed.
func New(_ context.Context, log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		log:        log.Named("repo.memory"),
		cfg:        cfg.Roster,
		activities: make(map[string]*entities.Activity),
	}
}

// OnStart loads the roster seed, replacing any previous state.
func (s *Store) OnStart(_ context.Context) error {
	activities, err := seed.Load(s.cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	if err := seed.Validate(activities); err != nil {
		return fmt.Errorf("validate seed: %w", err)
	}
	s.Reset(activities)

	source := s.cfg.SeedFile
	if source == "" {
		source = "builtin"
	}
	s.log.Infow("roster ready", "activities", len(activities), "seed", source, "enforce_capacity", s.cfg.EnforceCapacity)
	return nil
}

// OnStop discards the roster.
func (s *Store) OnStop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.activities = make(map[string]*entities.Activity)
	return nil
}

// Reset replaces the roster with copies of activities.
func (s *Store) Reset(activities []entities.Activity) {
	order := make([]string, 0, len(activities))
	byName := make(map[string]*entities.Activity, len(activities))
	for _, a := range activities {
		c := a.Clone()
		order = append(order, c.Name)
		byName[c.Name] = &c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	s.activities = byName
}

// ListActivities returns copies of all activities in seed order.
func (s *Store) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.activities[name].Clone())
	}
	return out, nil
}

// GetActivity returns a copy of the named activity.
func (s *Store) GetActivity(ctx context.Context, name string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	c := a.Clone()
	return &c, nil
}

// AddParticipant signs email up for the named activity.
func (s *Store) AddParticipant(ctx context.Context, name, email string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	if err := a.AddParticipant(email, s.cfg.EnforceCapacity); err != nil {
		return nil, err
	}
	c := a.Clone()
	return &c, nil
}

// RemoveParticipant unregisters email from the named activity.
func (s *Store) RemoveParticipant(ctx context.Context, name, email string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	if err := a.RemoveParticipant(email); err != nil {
		return nil, err
	}
	c := a.Clone()
	return &c, nil
}
