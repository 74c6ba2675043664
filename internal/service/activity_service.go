package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/events"
)

const activityCapacity = 50

// ActivityService keeps a bounded in-memory feed of session and alert
// events, newest first. It is populated by subscribing to the dispatcher.
type ActivityService struct {
	mu      sync.RWMutex
	entries []domain.ActivityEntry
}

// NewActivityService builds an empty feed.
func NewActivityService() *ActivityService {
	return &ActivityService{}
}

// RegisterHandlers subscribes the feed to the session and alert events.
func (s *ActivityService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventUserLoggedIn, s.onEvent)
	dispatcher.Subscribe(events.EventUserLoggedOut, s.onEvent)
	dispatcher.Subscribe(events.EventSessionRestored, s.onEvent)
	dispatcher.Subscribe(events.EventAlertAcknowledged, s.onEvent)
}

func (s *ActivityService) onEvent(_ context.Context, event events.Event) error {
	entry := domain.ActivityEntry{
		ID:        event.ID,
		Kind:      string(event.Type),
		Timestamp: event.Timestamp,
	}

	switch payload := event.Payload.(type) {
	case events.UserLoggedInPayload:
		entry.Username = payload.Username
		entry.Message = fmt.Sprintf("%s signed in as %s", payload.Username, payload.Role)
	case events.UserLoggedOutPayload:
		entry.Username = payload.Username
		entry.Message = fmt.Sprintf("%s signed out", payload.Username)
	case events.SessionRestoredPayload:
		entry.Username = payload.Username
		entry.Message = fmt.Sprintf("session restored for %s", payload.Username)
	case events.AlertAcknowledgedPayload:
		entry.Username = payload.By
		entry.Message = fmt.Sprintf("alert %s acknowledged by %s", payload.AlertID, payload.By)
	default:
		entry.Message = string(event.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]domain.ActivityEntry{entry}, s.entries...)
	if len(s.entries) > activityCapacity {
		s.entries = s.entries[:activityCapacity]
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *ActivityService) Recent(n int) []domain.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]domain.ActivityEntry, n)
	copy(out, s.entries[:n])
	return out
}
