package worker

import (
	"github.com/spec-kit/ppe-dashboard/internal/events"
	"github.com/spec-kit/ppe-dashboard/internal/service"
)

// StartActivityWorker wires the activity feed into the event dispatcher.
func StartActivityWorker(activity *service.ActivityService, dispatcher events.Dispatcher) {
	if activity == nil || dispatcher == nil {
		return
	}
	activity.RegisterHandlers(dispatcher)
}
