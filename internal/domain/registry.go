// Package domain defines the activity registry and its validation rules.
package domain

import (
	"errors"
	"sync"
)

var (
	// ErrActivityNotFound is returned when an activity name is not in the catalog.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the email is already on the roster.
	ErrAlreadyRegistered = errors.New("student is already signed up")
	// ErrNotRegistered is returned when the email is not on the roster.
	ErrNotRegistered = errors.New("participant not found in this activity")
	// ErrActivityFull is returned when the roster has reached max participants.
	ErrActivityFull = errors.New("activity is full")
)

// Registry owns the in-memory activity catalog. All roster mutation goes
// through Signup and Unregister; one lock covers the whole map, which is
// plenty at this scale.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewRegistry constructs a registry seeded with the provided catalog.
// Rosters are copied so callers keep no handle on the live state.
func NewRegistry(catalog []Activity) *Registry {
	r := &Registry{activities: make(map[string]*Activity, len(catalog))}
	for _, activity := range catalog {
		seeded := activity.snapshot()
		r.activities[seeded.Name] = &seeded
	}
	return r
}

// List returns a point-in-time snapshot of every activity keyed by name.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.snapshot()
	}
	return out
}

// Get returns a snapshot of one activity.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return activity.snapshot(), nil
}

// Signup appends email to the activity's roster, preserving signup order.
// Preconditions are checked in order: the activity must exist, the email must
// not already be registered, and the roster must have room. The returned
// snapshot reflects the roster after the append.
func (r *Registry) Signup(name, email string) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	if activity.Registered(email) {
		return Activity{}, ErrAlreadyRegistered
	}
	if activity.Full() {
		return Activity{}, ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	return activity.snapshot(), nil
}

// Unregister removes email from the activity's roster, keeping the relative
// order of the remaining participants. The activity must exist and the email
// must currently be registered. The returned snapshot reflects the roster
// after the removal.
func (r *Registry) Unregister(name, email string) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return activity.snapshot(), nil
		}
	}
	return Activity{}, ErrNotRegistered
}
