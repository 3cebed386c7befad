// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered signals a duplicate signup.
	ErrAlreadyRegistered = errors.New("already signed up")
	// ErrNotRegistered signals an unregister for an absent participant.
	ErrNotRegistered = errors.New("not signed up")
	// ErrCapacityExceeded signals a signup on a full activity.
	ErrCapacityExceeded = errors.New("activity is full")
)
