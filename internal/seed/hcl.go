package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"
)

// hclSeedFile is the top-level structure of a roster seed file:
//
//	activity "Chess Club" {
//	  description      = "Learn strategies and compete in chess tournaments"
//	  schedule         = "Fridays, 3:30 PM - 5:00 PM"
//	  max_participants = 12
//	  participants     = ["michael@mergington.edu"]
//	}
type hclSeedFile struct {
	Activities []hclActivity `hcl:"activity,block"`
}

type hclActivity struct {
	Name            string   `hcl:"name,label"`
	Description     string   `hcl:"description,optional"`
	Schedule        string   `hcl:"schedule,optional"`
	MaxParticipants int      `hcl:"max_participants"`
	Participants    []string `hcl:"participants,optional"`
}

// Load returns the roster seed. An empty path selects the built-in activities.
func Load(path string) ([]entities.Activity, error) {
	if path == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseHCL(src, path)
}

// ParseHCL decodes and validates activities from HCL source.
func ParseHCL(src []byte, filename string) ([]entities.Activity, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclSeedFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	activities := make([]entities.Activity, 0, len(parsed.Activities))
	for _, a := range parsed.Activities {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		activities = append(activities, entities.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		})
	}

	if err := Validate(activities); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", filename, err)
	}
	return activities, nil
}

// Validate checks every activity and rejects duplicate names.
func Validate(activities []entities.Activity) error {
	if len(activities) == 0 {
		return errors.New("seed contains no activities")
	}
	names := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, ok := names[a.Name]; ok {
			return fmt.Errorf("%w: duplicate activity %q", entities.ErrInvalidArgument, a.Name)
		}
		names[a.Name] = struct{}{}
	}
	return nil
}
