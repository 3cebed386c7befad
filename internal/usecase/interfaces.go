package usecase

import (
	"context"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
)

// ActivityUsecaseInterface abstracts roster operations for delivery layer.
type ActivityUsecaseInterface interface {
	Activities(ctx context.Context) ([]entities.Activity, error)
	Activity(ctx context.Context, name string) (*entities.Activity, error)
	Signup(ctx context.Context, activityName, email string) (entities.Confirmation, error)
	Unregister(ctx context.Context, activityName, email string) (entities.Confirmation, error)
}
