// Package entities contains core business entities.
package entities

import "fmt"

// Activity is an extracurricular offering with a capacity and a participant list.
// Participants keep insertion order and never contain duplicates.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// HasParticipant reports whether email is on the participant list.
func (a *Activity) HasParticipant(email string) bool {
	return a.indexOf(email) >= 0
}

// IsFull reports whether the participant list reached MaxParticipants.
func (a *Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// AddParticipant appends email to the roster. Capacity is only checked when
// enforceCapacity is set.
func (a *Activity) AddParticipant(email string, enforceCapacity bool) error {
	if a.HasParticipant(email) {
		return fmt.Errorf("%w: %s already signed up for %s", ErrAlreadyRegistered, email, a.Name)
	}
	if enforceCapacity && a.IsFull() {
		return fmt.Errorf("%w: %s has %d/%d participants", ErrCapacityExceeded, a.Name, len(a.Participants), a.MaxParticipants)
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant drops email from the roster keeping the order of the rest.
func (a *Activity) RemoveParticipant(email string) error {
	i := a.indexOf(email)
	if i < 0 {
		return fmt.Errorf("%w: %s not signed up for %s", ErrNotRegistered, email, a.Name)
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return nil
}

// Validate checks the roster invariants of a single activity.
func (a Activity) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: activity name is required", ErrInvalidArgument)
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%w: %s: max_participants must be positive", ErrInvalidArgument, a.Name)
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("%w: %s: %d participants exceed max_participants %d",
			ErrInvalidArgument, a.Name, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s: duplicate participant %q", ErrInvalidArgument, a.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

func (a *Activity) indexOf(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}
