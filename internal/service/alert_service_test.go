package service

import (
	"context"
	"testing"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
	"github.com/spec-kit/ppe-dashboard/internal/events"
	apperrors "github.com/spec-kit/ppe-dashboard/pkg/util"
)

func TestAlertList_FilterBySeverity(t *testing.T) {
	svc := NewAlertService(nil)

	all := svc.List("")
	if len(all) != 6 {
		t.Fatalf("len(all) = %d", len(all))
	}

	critical := svc.List("critical")
	if len(critical) == 0 {
		t.Fatal("no critical alerts")
	}
	for _, a := range critical {
		if a.Severity != domain.AlertSeverityCritical {
			t.Fatalf("unexpected severity %q", a.Severity)
		}
	}
}

func TestAcknowledge(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	activity := NewActivityService()
	activity.RegisterHandlers(dispatcher)

	svc := NewAlertService(dispatcher)

	alert, err := svc.Acknowledge(context.Background(), "1", "manager")
	if err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if alert.Status != domain.AlertStatusAcknowledged {
		t.Fatalf("status = %q", alert.Status)
	}

	recent := activity.Recent(0)
	if len(recent) != 1 || recent[0].Kind != string(events.EventAlertAcknowledged) {
		t.Fatalf("activity feed = %+v", recent)
	}
}

func TestAcknowledge_UnknownAlert(t *testing.T) {
	svc := NewAlertService(nil)

	_, err := svc.Acknowledge(context.Background(), "999", "manager")
	if err == nil {
		t.Fatal("expected error")
	}
	if !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivityFeed_BoundedNewestFirst(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	activity := NewActivityService()
	activity.RegisterHandlers(dispatcher)

	svc := NewAlertService(dispatcher)
	for i := 0; i < activityCapacity+10; i++ {
		if _, err := svc.Acknowledge(context.Background(), "2", "manager"); err != nil {
			t.Fatalf("Acknowledge: %v", err)
		}
	}

	recent := activity.Recent(0)
	if len(recent) != activityCapacity {
		t.Fatalf("len(recent) = %d, want %d", len(recent), activityCapacity)
	}
	if got := activity.Recent(5); len(got) != 5 {
		t.Fatalf("Recent(5) len = %d", len(got))
	}
}
