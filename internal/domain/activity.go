package domain

// Activity describes one extracurricular offering and its current roster.
// The name doubles as the registry key; there is no separate id.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Registered reports whether email already appears on the roster.
func (a Activity) Registered(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}

// Full reports whether the roster has reached capacity.
func (a Activity) Full() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// snapshot returns a copy whose roster is detached from the live slice.
func (a Activity) snapshot() Activity {
	out := a
	out.Participants = append([]string(nil), a.Participants...)
	return out
}
