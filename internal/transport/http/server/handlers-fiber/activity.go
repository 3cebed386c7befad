package handlers_fiber

import (
	"net/http"

	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetRoot redirects to the front-end entry page.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Redirect(h.indexPath, fiber.StatusTemporaryRedirect)
}

// GetActivities returns all activities keyed by name.
func (h *Handler) GetActivities(c *fiber.Ctx) error {
	activities, err := h.uc.Activities(c.UserContext())
	if err != nil {
		h.log.Errorw("list activities failed", "error", err)
		return writeError(c, err, rosterRef{})
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIActivities(activities))
}

// GetActivity returns a single activity.
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	name, err := activityName(c)
	if err != nil {
		return writeError(c, err, rosterRef{})
	}

	activity, err := h.uc.Activity(c.UserContext(), name)
	if err != nil {
		return writeError(c, err, rosterRef{activity: name})
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIActivity(*activity))
}

// PostSignup registers the email query value for the activity.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	ref, err := rosterRequest(c)
	if err != nil {
		return writeError(c, err, ref)
	}

	conf, err := h.uc.Signup(c.UserContext(), ref.activity, ref.email)
	if err != nil {
		return writeError(c, err, ref)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToMessage(conf))
}

// PostUnregister removes the email query value from the activity.
func (h *Handler) PostUnregister(c *fiber.Ctx) error {
	ref, err := rosterRequest(c)
	if err != nil {
		return writeError(c, err, ref)
	}

	conf, err := h.uc.Unregister(c.UserContext(), ref.activity, ref.email)
	if err != nil {
		return writeError(c, err, ref)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToMessage(conf))
}

func rosterRequest(c *fiber.Ctx) (rosterRef, error) {
	name, err := activityName(c)
	if err != nil {
		return rosterRef{}, err
	}
	email, err := emailQuery(c)
	if err != nil {
		return rosterRef{activity: name}, err
	}
	return rosterRef{activity: name, email: email}, nil
}
