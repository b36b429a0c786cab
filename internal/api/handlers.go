// Package api exposes HTTP handlers for the activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
	"example.com/activities/internal/observability"
)

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry *domain.Registry
}

// NewHandler builds a Handler.
func NewHandler(registry *domain.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	activities := h.registry.List()
	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

// activityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. Activity names may contain spaces; the mux
// hands us the unescaped path.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 || idx == len(rest)-1 {
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	var wantMethod string
	switch action {
	case "signup":
		wantMethod = http.MethodPost
	case "unregister":
		wantMethod = http.MethodDelete
	default:
		writeError(w, http.StatusNotFound, "not_found", "unknown route")
		return
	}
	if r.Method != wantMethod {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing email parameter")
		return
	}

	if action == "signup" {
		h.signup(w, name, email)
		return
	}
	h.unregister(w, name, email)
}

func (h *Handler) signup(w http.ResponseWriter, name, email string) {
	activity, err := h.registry.Signup(name, email)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	observability.RecordSignup(activity.Name, len(activity.Participants))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity.Name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, name, email string) {
	activity, err := h.registry.Unregister(name, email)
	if err != nil {
		writeRegistryError(w, err)
		return
	}

	observability.RecordUnregister(activity.Name, len(activity.Participants))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", email, activity.Name),
	})
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityView exposes one activity; the name is the key in the listing map.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    activity.Participants,
	}
}

// writeRegistryError maps registry validation failures onto HTTP statuses and
// records the rejection. Unknown activities are a not-found class error; the
// membership and capacity failures are bad requests.
func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		observability.RecordRejection("not_found")
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		observability.RecordRejection("already_registered")
		writeError(w, http.StatusBadRequest, "already_registered", "Student is already signed up")
	case errors.Is(err, domain.ErrNotRegistered):
		observability.RecordRejection("not_registered")
		writeError(w, http.StatusBadRequest, "not_registered", "Participant not found in this activity")
	case errors.Is(err, domain.ErrActivityFull):
		observability.RecordRejection("activity_full")
		writeError(w, http.StatusBadRequest, "activity_full", "Activity is full")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
