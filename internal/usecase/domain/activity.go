// Package domain contains application Usecases orchestrating the activity roster.
package domain

import (
	"context"
	"fmt"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	opSignup     = "signup"
	opUnregister = "unregister"
)

// Activities returns every activity with its current participants.
func (u *Usecase) Activities(ctx context.Context) ([]entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	activities, err := u.repo.ListActivities(ctx)
	if err != nil {
		u.log.Errorw("failed to list activities", "error", err)
		return nil, err
	}
	for _, a := range activities {
		u.opts.Metrics.SetParticipants(a.Name, len(a.Participants))
	}
	return activities, nil
}

// Activity returns a single activity by its exact name.
func (u *Usecase) Activity(ctx context.Context, name string) (*entities.Activity, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetActivity(ctx, name)
}

// Signup registers email for the named activity.
func (u *Usecase) Signup(ctx context.Context, activityName, email string) (entities.Confirmation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.checkEmail(email); err != nil {
		u.opts.Metrics.RosterOperation(opSignup, err)
		return entities.Confirmation{}, err
	}

	activity, err := u.repo.AddParticipant(ctx, activityName, email)
	u.opts.Metrics.RosterOperation(opSignup, err)
	if err != nil {
		u.log.Infow("signup rejected", "activity", activityName, "email", email, "error", err)
		return entities.Confirmation{}, err
	}

	u.opts.Metrics.SetParticipants(activity.Name, len(activity.Participants))
	u.log.Infow("signed up", "activity", activity.Name, "email", email, "participants", len(activity.Participants))
	return entities.Confirmation{
		Email:    email,
		Activity: activity.Name,
		Message:  fmt.Sprintf("Signed up %s for %s", email, activity.Name),
	}, nil
}

// Unregister removes email from the named activity.
func (u *Usecase) Unregister(ctx context.Context, activityName, email string) (entities.Confirmation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	activity, err := u.repo.RemoveParticipant(ctx, activityName, email)
	u.opts.Metrics.RosterOperation(opUnregister, err)
	if err != nil {
		u.log.Infow("unregister rejected", "activity", activityName, "email", email, "error", err)
		return entities.Confirmation{}, err
	}

	u.opts.Metrics.SetParticipants(activity.Name, len(activity.Participants))
	u.log.Infow("unregistered", "activity", activity.Name, "email", email, "participants", len(activity.Participants))
	return entities.Confirmation{
		Email:    email,
		Activity: activity.Name,
		Message:  fmt.Sprintf("Unregistered %s from %s", email, activity.Name),
	}, nil
}

// checkEmail is permissive unless ValidateEmail is set.
func (u *Usecase) checkEmail(email string) error {
	if !u.opts.ValidateEmail {
		return nil
	}
	if err := validation.Validate(email, validation.Required, is.EmailFormat); err != nil {
		return fmt.Errorf("%w: email %s", entities.ErrInvalidArgument, err.Error())
	}
	return nil
}
