package usecase

import (
	"time"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/repository"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ActivityUsecaseInterface
}

// Options re-exports domain options for callers wiring the usecase layer.
type Options = domain.Options

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration, opts Options) InterfaceUsecase {
	return domain.New(log, repo, timeout, opts)
}
