package events

import (
	"time"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserLoggedIn      EventType = "user_logged_in"
	EventUserLoggedOut     EventType = "user_logged_out"
	EventSessionRestored   EventType = "session_restored"
	EventAlertAcknowledged EventType = "alert_acknowledged"
)

// Event represents a domain event emitted by the session and alert layers.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// UserLoggedOutPayload payload.
type UserLoggedOutPayload struct {
	Username string `json:"username"`
}

// SessionRestoredPayload payload.
type SessionRestoredPayload struct {
	Username string `json:"username"`
}

// AlertAcknowledgedPayload payload.
type AlertAcknowledgedPayload struct {
	AlertID string `json:"alert_id"`
	By      string `json:"by"`
}
