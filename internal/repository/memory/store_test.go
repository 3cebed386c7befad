package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uiyort/skills-getting-started-with-github-copilot/config"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
	"go.uber.org/zap"
)

func newStore(t *testing.T, roster config.RosterConfig) *Store {
	t.Helper()
	s := New(context.Background(), zap.NewNop().Sugar(), &config.Config{Roster: roster})
	require.NoError(t, s.OnStart(context.Background()))
	return s
}

func participants(t *testing.T, s *Store, name string) []string {
	t.Helper()
	a, err := s.GetActivity(context.Background(), name)
	require.NoError(t, err)
	return a.Participants
}

func TestStoreListActivities(t *testing.T) {
	s := newStore(t, config.RosterConfig{})

	activities, err := s.ListActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 9)
	require.Equal(t, "Chess Club", activities[0].Name)
	require.Equal(t, 12, activities[0].MaxParticipants)

	// callers get copies
	activities[0].Participants[0] = "mutated@mergington.edu"
	require.Equal(t, "michael@mergington.edu", participants(t, s, "Chess Club")[0])
}

func TestStoreSignupAndUnregisterRestoresCount(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	ctx := context.Background()
	before := len(participants(t, s, "Programming Class"))

	a, err := s.AddParticipant(ctx, "Programming Class", "test.student@mergington.edu")
	require.NoError(t, err)
	require.Len(t, a.Participants, before+1)
	require.Equal(t, "test.student@mergington.edu", a.Participants[len(a.Participants)-1])

	a, err = s.RemoveParticipant(ctx, "Programming Class", "test.student@mergington.edu")
	require.NoError(t, err)
	require.Len(t, a.Participants, before)
	require.NotContains(t, a.Participants, "test.student@mergington.edu")
}

func TestStoreUnknownActivity(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	ctx := context.Background()

	for _, name := range []string{"Nonexistent Activity", "chess club", "CHESS CLUB", ""} {
		_, err := s.AddParticipant(ctx, name, "test.student@mergington.edu")
		require.ErrorIs(t, err, entities.ErrActivityNotFound, name)
		_, err = s.RemoveParticipant(ctx, name, "michael@mergington.edu")
		require.ErrorIs(t, err, entities.ErrActivityNotFound, name)
		_, err = s.GetActivity(ctx, name)
		require.ErrorIs(t, err, entities.ErrActivityNotFound, name)
	}
}

func TestStoreDuplicateSignup(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	ctx := context.Background()

	_, err := s.AddParticipant(ctx, "Chess Club", "twice@mergington.edu")
	require.NoError(t, err)
	_, err = s.AddParticipant(ctx, "Chess Club", "twice@mergington.edu")
	require.ErrorIs(t, err, entities.ErrAlreadyRegistered)
}

func TestStoreUnregisterSeedParticipantOnce(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	ctx := context.Background()

	_, err := s.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	_, err = s.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, entities.ErrNotRegistered)
}

func TestStoreMultipleActivitiesAreIndependent(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	ctx := context.Background()
	email := "test.student@mergington.edu"

	for _, name := range []string{"Chess Club", "Programming Class", "Art Workshop"} {
		_, err := s.AddParticipant(ctx, name, email)
		require.NoError(t, err)
	}
	_, err := s.RemoveParticipant(ctx, "Chess Club", email)
	require.NoError(t, err)

	require.NotContains(t, participants(t, s, "Chess Club"), email)
	require.Contains(t, participants(t, s, "Programming Class"), email)
	require.Contains(t, participants(t, s, "Art Workshop"), email)
}

func TestStoreCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("permissive", func(t *testing.T) {
		s := newStore(t, config.RosterConfig{})
		for i := 0; i < 12; i++ {
			_, err := s.AddParticipant(ctx, "Math Olympiad", fmt.Sprintf("student%d@mergington.edu", i))
			require.NoError(t, err)
		}
		require.Len(t, participants(t, s, "Math Olympiad"), 14)
	})

	t.Run("enforced", func(t *testing.T) {
		s := newStore(t, config.RosterConfig{EnforceCapacity: true})
		for i := 0; i < 8; i++ {
			_, err := s.AddParticipant(ctx, "Math Olympiad", fmt.Sprintf("student%d@mergington.edu", i))
			require.NoError(t, err)
		}
		_, err := s.AddParticipant(ctx, "Math Olympiad", "late@mergington.edu")
		require.ErrorIs(t, err, entities.ErrCapacityExceeded)
		require.Len(t, participants(t, s, "Math Olympiad"), 10)
	})
}

func TestStoreConcurrentSignupsStayUnique(t *testing.T) {
	s := newStore(t, config.RosterConfig{EnforceCapacity: true})
	ctx := context.Background()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// five distinct emails, ten attempts each
			_, err := s.AddParticipant(ctx, "Gym Class", fmt.Sprintf("racer%d@mergington.edu", i%5))
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 5, accepted)
	got := participants(t, s, "Gym Class")
	require.Len(t, got, 7)
	seen := map[string]bool{}
	for _, p := range got {
		require.False(t, seen[p], p)
		seen[p] = true
	}
}

func TestStoreCanceledContext(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListActivities(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.AddParticipant(ctx, "Chess Club", "x@mergington.edu")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreOnStartBadSeedFile(t *testing.T) {
	s := New(context.Background(), zap.NewNop().Sugar(), &config.Config{
		Roster: config.RosterConfig{SeedFile: "does-not-exist.hcl"},
	})
	require.Error(t, s.OnStart(context.Background()))
}

func TestStoreOnStopDiscardsRoster(t *testing.T) {
	s := newStore(t, config.RosterConfig{})
	require.NoError(t, s.OnStop(context.Background()))

	activities, err := s.ListActivities(context.Background())
	require.NoError(t, err)
	require.Empty(t, activities)
}
