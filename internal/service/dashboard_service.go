package service

import "github.com/spec-kit/ppe-dashboard/internal/domain"

// DashboardService assembles the dashboard payload.
type DashboardService struct {
	activity *ActivityService
}

// NewDashboardService builds the service.
func NewDashboardService(activity *ActivityService) *DashboardService {
	return &DashboardService{activity: activity}
}

// Dashboard returns the headline stats, hourly series and recent activity.
func (s *DashboardService) Dashboard() domain.Dashboard {
	return domain.Dashboard{
		Stats:            sampleStats(),
		ComplianceByHour: sampleComplianceByHour(),
		ViolationsByHour: sampleViolationsByHour(),
		RecentActivity:   s.activity.Recent(5),
	}
}
