package handlers_fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/api"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const emailParam = "email"

var errMissingEmail = fmt.Errorf("%w: email query parameter is required", entities.ErrInvalidArgument)

// rosterRef names the activity and participant a request is about.
type rosterRef struct {
	activity string
	email    string
}

func writeError(c *fiber.Ctx, err error, ref rosterRef) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrActivityNotFound):
		status = http.StatusNotFound
		msg = "Activity not found"
	case errors.Is(err, entities.ErrAlreadyRegistered):
		status = http.StatusBadRequest
		msg = fmt.Sprintf("%s already signed up for %s", ref.email, ref.activity)
	case errors.Is(err, entities.ErrNotRegistered):
		status = http.StatusBadRequest
		msg = fmt.Sprintf("%s not signed up for %s", ref.email, ref.activity)
	case errors.Is(err, entities.ErrCapacityExceeded):
		status = http.StatusBadRequest
		msg = "Activity is full"
	case errors.Is(err, errMissingEmail):
		status = http.StatusUnprocessableEntity
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		msg = "request timed out"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) api.ErrorResponse {
	return api.ErrorResponse{Detail: msg}
}

// activityName decodes the activity path segment; names may contain spaces.
func activityName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params(api.ActivityNameParam))
	if err != nil {
		return "", fmt.Errorf("%w: malformed activity name", entities.ErrInvalidArgument)
	}
	return utils.CopyString(name), nil
}

// emailQuery returns the email query value. An empty value is allowed, a
// missing parameter is not.
func emailQuery(c *fiber.Ctx) (string, error) {
	if !c.Context().QueryArgs().Has(emailParam) {
		return "", errMissingEmail
	}
	return utils.CopyString(c.Query(emailParam)), nil
}
