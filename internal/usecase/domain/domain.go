package domain

import (
	"context"
	"time"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/metrics"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/repository"

	"go.uber.org/zap"
)

// Options tunes roster behaviour that is off by default.
type Options struct {
	// ValidateEmail rejects signups whose email is empty or malformed.
	ValidateEmail bool
	Metrics       *metrics.Metrics
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	opts    Options
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	timeout time.Duration,
	opts Options,
) *Usecase {
	return &Usecase{
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
		opts:    opts,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
