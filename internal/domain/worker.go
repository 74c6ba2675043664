package domain

// WorkerStatus represents today's compliance standing for a worker.
type WorkerStatus string

const (
	WorkerStatusCompliant    WorkerStatus = "compliant"
	WorkerStatusWarning      WorkerStatus = "warning"
	WorkerStatusNonCompliant WorkerStatus = "non-compliant"
)

// Worker models one roster row on the worker management view.
type Worker struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	EmployeeID      string       `json:"employee_id"`
	Avatar          string       `json:"avatar"`
	Department      string       `json:"department"`
	Shift           string       `json:"shift"`
	TodayCompliance int          `json:"today_compliance"`
	WeeklyAvg       int          `json:"weekly_avg"`
	MonthlyAvg      int          `json:"monthly_avg"`
	TotalViolations int          `json:"total_violations"`
	LastCheck       string       `json:"last_check"`
	Status          WorkerStatus `json:"status"`
	PPEItems        []string     `json:"ppe_items"`
}
