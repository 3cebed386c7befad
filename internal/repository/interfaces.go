// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// RosterInterface exposes activity roster operations.
type RosterInterface interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	GetActivity(ctx context.Context, name string) (*entities.Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*entities.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*entities.Activity, error)
}
