// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/api"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
)

// ToAPIActivity maps entities.Activity to transport model.
func ToAPIActivity(a entities.Activity) api.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	return api.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToAPIActivities keys activities by name.
func ToAPIActivities(list []entities.Activity) api.Activities {
	out := make(api.Activities, len(list))
	for _, a := range list {
		out[a.Name] = ToAPIActivity(a)
	}
	return out
}

// ToMessage maps a roster confirmation to its response body.
func ToMessage(c entities.Confirmation) api.MessageResponse {
	return api.MessageResponse{Message: c.Message}
}
