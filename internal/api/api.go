// Package api defines the HTTP contract of the activities service.
package api

import "github.com/gofiber/fiber/v2"

// Activity is the public view of an activity, keyed by name in listings.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Activities maps activity name to its public view.
type Activities map[string]Activity

// MessageResponse confirms a roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ServerInterface is implemented by the HTTP handlers.
type ServerInterface interface {
	// (GET /)
	GetRoot(c *fiber.Ctx) error
	// (GET /activities)
	GetActivities(c *fiber.Ctx) error
	// (GET /activities/{activity_name})
	GetActivity(c *fiber.Ctx) error
	// (POST /activities/{activity_name}/signup)
	PostSignup(c *fiber.Ctx) error
	// (POST /activities/{activity_name}/unregister)
	PostUnregister(c *fiber.Ctx) error
}

// ActivityNameParam is the path parameter holding the URL-encoded activity name.
const ActivityNameParam = "activity_name"

// RegisterHandlers mounts every route of ServerInterface on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Get("/", si.GetRoot)
	router.Get("/activities", si.GetActivities)
	router.Get("/activities/:"+ActivityNameParam, si.GetActivity)
	router.Post("/activities/:"+ActivityNameParam+"/signup", si.PostSignup)
	router.Post("/activities/:"+ActivityNameParam+"/unregister", si.PostUnregister)
	router.Delete("/activities/:"+ActivityNameParam+"/participants", si.PostUnregister)
}
