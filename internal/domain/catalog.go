package domain

// DefaultCatalog returns the fixed set of activities the service is seeded
// with at startup. There are no create or delete operations; this catalog is
// the full universe of activities for the process lifetime.
func DefaultCatalog() []Activity {
	return []Activity{
		{
			Name:            "Tennis Club",
			Description:     "Develop tennis skills and compete in friendly matches",
			Schedule:        "Wednesdays and Saturdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Join our competitive basketball team",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "sarah@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Tuesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"lucy@mergington.edu"},
		},
		{
			Name:            "Music Ensemble",
			Description:     "Play instruments and perform in school concerts",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"william@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Design and build robots for competitions",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"lucas@mergington.edu", "ava@mergington.edu"},
		},
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
	}
}
