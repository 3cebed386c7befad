// Package seed provides the initial roster loaded at startup.
package seed

import "github.com/uiyort/skills-getting-started-with-github-copilot/internal/entities"

// Default returns the built-in Mergington High School activities.
func Default() []entities.Activity {
	return []entities.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"alex@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly games",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"mia@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Art Workshop",
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ava@mergington.edu", "liam@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce school plays and performances",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "jack@mergington.edu"},
		},
		{
			Name:            "Math Olympiad",
			Description:     "Prepare for math competitions and solve challenging problems",
			Schedule:        "Tuesdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"benjamin@mergington.edu", "charlotte@mergington.edu"},
		},
	}
}
