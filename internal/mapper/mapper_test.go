package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
)

func TestToAPIActivitiesJSONShape(t *testing.T) {
	list := []entities.Activity{{
		Name:            "Chess Club",
		Description:     "Learn strategies",
		Schedule:        "Fridays",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu"},
	}, {
		Name:            "Empty",
		MaxParticipants: 1,
	}}

	raw, err := json.Marshal(ToAPIActivities(list))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"Chess Club": {
			"description": "Learn strategies",
			"schedule": "Fridays",
			"max_participants": 12,
			"participants": ["michael@mergington.edu"]
		},
		"Empty": {
			"description": "",
			"schedule": "",
			"max_participants": 1,
			"participants": []
		}
	}`, string(raw))
}
