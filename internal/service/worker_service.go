package service

import (
	"strings"

	"github.com/spec-kit/ppe-dashboard/internal/domain"
)

// WorkerService serves the worker roster.
type WorkerService struct {
	workers []domain.Worker
}

// NewWorkerService builds the service.
func NewWorkerService() *WorkerService {
	return &WorkerService{workers: sampleWorkers()}
}

// List returns roster rows, optionally filtered by a case-insensitive
// substring match on name, employee id or department.
func (s *WorkerService) List(query string) []domain.Worker {
	if query == "" {
		out := make([]domain.Worker, len(s.workers))
		copy(out, s.workers)
		return out
	}

	query = strings.ToLower(query)
	var out []domain.Worker
	for _, w := range s.workers {
		if strings.Contains(strings.ToLower(w.Name), query) ||
			strings.Contains(strings.ToLower(w.EmployeeID), query) ||
			strings.Contains(strings.ToLower(w.Department), query) {
			out = append(out, w)
		}
	}
	return out
}

// Get returns one worker by employee id.
func (s *WorkerService) Get(employeeID string) (domain.Worker, bool) {
	for _, w := range s.workers {
		if strings.EqualFold(w.EmployeeID, employeeID) {
			return w, true
		}
	}
	return domain.Worker{}, false
}
