package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/events"
	apperrors "github.com/spec-kit/ppe-dashboard/pkg/util"
)

// AlertService serves the alert feed. Acknowledgement mutates the in-memory
// status only; there is no alert persistence.
type AlertService struct {
	mu         sync.RWMutex
	alerts     []domain.Alert
	dispatcher events.Dispatcher
}

// NewAlertService builds the service.
func NewAlertService(dispatcher events.Dispatcher) *AlertService {
	return &AlertService{alerts: sampleAlerts(), dispatcher: dispatcher}
}

// List returns alerts, optionally filtered by severity.
func (s *AlertService) List(severity string) []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Alert
	for _, a := range s.alerts {
		if severity == "" || severity == "all" || string(a.Severity) == severity {
			out = append(out, a)
		}
	}
	return out
}

// Acknowledge marks an active alert as acknowledged by the given operator.
func (s *AlertService) Acknowledge(ctx context.Context, alertID, by string) (domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.alerts {
		if a.ID != alertID {
			continue
		}
		if a.Status == domain.AlertStatusActive {
			s.alerts[i].Status = domain.AlertStatusAcknowledged
		}
		if s.dispatcher != nil {
			_ = s.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventAlertAcknowledged,
				Timestamp: time.Now(),
				Payload:   events.AlertAcknowledgedPayload{AlertID: alertID, By: by},
			})
		}
		return s.alerts[i], nil
	}
	return domain.Alert{}, apperrors.NewNotFound("alert", map[string]any{"id": alertID})
}
