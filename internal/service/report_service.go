package service

import "github.com/spec-kit/ppe-dashboard/internal/domain"

// ReportService serves compliance report payloads.
type ReportService struct{}

// NewReportService builds the service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Report returns the weekly chart series and the department breakdown.
func (s *ReportService) Report(timeRange string) domain.Report {
	if timeRange == "" {
		timeRange = "weekly"
	}
	return domain.Report{
		TimeRange:   timeRange,
		Series:      sampleWeeklyReport(),
		Departments: sampleDepartmentReports(),
	}
}
