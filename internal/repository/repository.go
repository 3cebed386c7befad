// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/uiyort/skills-getting-started-with-github-copilot/config"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	RosterInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
