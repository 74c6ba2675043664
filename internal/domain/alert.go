package domain

// AlertSeverity classifies alerts on the alert center view.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// AlertStatus tracks the acknowledgement lifecycle of an alert.
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusScheduled    AlertStatus = "scheduled"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
)

// Alert models one entry in the alert feed.
type Alert struct {
	ID          string        `json:"id"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Worker      string        `json:"worker"`
	Time        string        `json:"time"`
	Date        string        `json:"date"`
	Status      AlertStatus   `json:"status"`
	Priority    string        `json:"priority"`
}
