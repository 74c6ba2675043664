package service

import "github.com/spec-kit/ppe-dashboard/internal/domain"

// Sample datasets backing the dashboard views. The site has no live feed
// wired in yet; every view serves these fixtures.

func sampleWorkers() []domain.Worker {
	return []domain.Worker{
		{
			ID: "1", Name: "John Smith", EmployeeID: "MIN001", Avatar: "JS",
			Department: "Excavation", Shift: "Morning (6AM-2PM)",
			TodayCompliance: 95, WeeklyAvg: 92, MonthlyAvg: 94,
			TotalViolations: 1, LastCheck: "10:30 AM", Status: domain.WorkerStatusCompliant,
			PPEItems: []string{"Helmet", "Boots", "Vest", "Lamp", "Detector", "Rescuer"},
		},
		{
			ID: "2", Name: "Sarah Johnson", EmployeeID: "MIN002", Avatar: "SJ",
			Department: "Transport", Shift: "Evening (2PM-10PM)",
			TodayCompliance: 88, WeeklyAvg: 85, MonthlyAvg: 87,
			TotalViolations: 3, LastCheck: "10:15 AM", Status: domain.WorkerStatusWarning,
			PPEItems: []string{"Boots", "Vest", "Lamp", "Detector"},
		},
		{
			ID: "3", Name: "Mike Williams", EmployeeID: "MIN003", Avatar: "MW",
			Department: "Maintenance", Shift: "Night (10PM-6AM)",
			TodayCompliance: 100, WeeklyAvg: 98, MonthlyAvg: 99,
			TotalViolations: 0, LastCheck: "09:45 AM", Status: domain.WorkerStatusCompliant,
			PPEItems: []string{"Helmet", "Boots", "Vest", "Lamp", "Detector", "Rescuer"},
		},
		{
			ID: "4", Name: "Emma Davis", EmployeeID: "MIN004", Avatar: "ED",
			Department: "Safety", Shift: "Morning (6AM-2PM)",
			TodayCompliance: 92, WeeklyAvg: 90, MonthlyAvg: 91,
			TotalViolations: 2, LastCheck: "10:00 AM", Status: domain.WorkerStatusCompliant,
			PPEItems: []string{"Helmet", "Boots", "Vest", "Lamp", "Rescuer"},
		},
		{
			ID: "5", Name: "Robert Brown", EmployeeID: "MIN005", Avatar: "RB",
			Department: "Excavation", Shift: "Evening (2PM-10PM)",
			TodayCompliance: 85, WeeklyAvg: 82, MonthlyAvg: 84,
			TotalViolations: 5, LastCheck: "09:30 AM", Status: domain.WorkerStatusNonCompliant,
			PPEItems: []string{"Helmet", "Vest", "Lamp"},
		},
		{
			ID: "6", Name: "Lisa Wilson", EmployeeID: "MIN006", Avatar: "LW",
			Department: "Transport", Shift: "Morning (6AM-2PM)",
			TodayCompliance: 96, WeeklyAvg: 94, MonthlyAvg: 95,
			TotalViolations: 1, LastCheck: "09:15 AM", Status: domain.WorkerStatusCompliant,
			PPEItems: []string{"Helmet", "Boots", "Vest", "Lamp", "Detector", "Rescuer"},
		},
	}
}

func sampleAlerts() []domain.Alert {
	return []domain.Alert{
		{
			ID: "1", Severity: domain.AlertSeverityCritical, Title: "Missing Helmet Detected",
			Description: "Worker MIN002 entered without helmet", Location: "Gate 1",
			Worker: "Sarah Johnson", Time: "10:15 AM", Date: "Today",
			Status: domain.AlertStatusActive, Priority: "high",
		},
		{
			ID: "2", Severity: domain.AlertSeverityWarning, Title: "Low RFID Reader Battery",
			Description: "RFID Reader #3 battery at 15%", Location: "Gate 2",
			Time: "09:30 AM", Date: "Today",
			Status: domain.AlertStatusActive, Priority: "medium",
		},
		{
			ID: "3", Severity: domain.AlertSeverityInfo, Title: "Scheduled Maintenance",
			Description: "Camera System maintenance scheduled", Location: "Camera #4",
			Time: "2:00 PM", Date: "Today",
			Status: domain.AlertStatusScheduled, Priority: "low",
		},
		{
			ID: "4", Severity: domain.AlertSeverityCritical, Title: "Gas Detector Missing",
			Description: "Worker MIN005 without gas detector", Location: "Gate 3",
			Worker: "Robert Brown", Time: "09:15 AM", Date: "Today",
			Status: domain.AlertStatusResolved, Priority: "high",
		},
		{
			ID: "5", Severity: domain.AlertSeverityWarning, Title: "Network Connectivity Issue",
			Description: "Camera feed interrupted for 5 minutes", Location: "Sector B",
			Time: "08:45 AM", Date: "Today",
			Status: domain.AlertStatusActive, Priority: "medium",
		},
		{
			ID: "6", Severity: domain.AlertSeverityCritical, Title: "Multiple PPE Violations",
			Description: "3 workers non-compliant in last hour", Location: "All Gates",
			Time: "08:30 AM", Date: "Today",
			Status: domain.AlertStatusActive, Priority: "high",
		},
	}
}

func sampleStats() domain.DashboardStats {
	return domain.DashboardStats{
		OverallCompliance:   92,
		ActiveWorkers:       156,
		WorkersUnderground:  42,
		NonComplianceCount:  8,
		TodayEntries:        89,
		YesterdayCompliance: 88,
	}
}

func sampleComplianceByHour() []domain.SeriesPoint {
	labels := []string{"6 AM", "8 AM", "10 AM", "12 PM", "2 PM", "4 PM", "6 PM"}
	values := []int{85, 88, 92, 95, 90, 87, 85}
	return zipSeries(labels, values)
}

func sampleViolationsByHour() []domain.SeriesPoint {
	labels := []string{"6 AM", "8 AM", "10 AM", "12 PM", "2 PM", "4 PM", "6 PM"}
	values := []int{15, 12, 8, 5, 10, 13, 15}
	return zipSeries(labels, values)
}

func sampleWeeklyReport() []domain.ReportSeries {
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	return []domain.ReportSeries{
		{Name: "Compliance Rate", Points: zipSeries(labels, []int{88, 92, 90, 95, 93, 89, 91})},
		{Name: "Violations", Points: zipSeries(labels, []int{12, 8, 10, 5, 7, 11, 9})},
	}
}

func sampleDepartmentReports() []domain.DepartmentReport {
	return []domain.DepartmentReport{
		{Department: "Excavation", Compliance: 90, Violations: 6, Trend: "up"},
		{Department: "Transport", Compliance: 92, Violations: 4, Trend: "up"},
		{Department: "Maintenance", Compliance: 99, Violations: 1, Trend: "steady"},
		{Department: "Safety", Compliance: 91, Violations: 2, Trend: "down"},
	}
}

func sampleSettings() domain.SiteSettings {
	return domain.SiteSettings{
		SiteName:         "Underground Mine Safety Dashboard",
		ComplianceTarget: 95,
		ShiftNames:       []string{"Morning (6AM-2PM)", "Evening (2PM-10PM)", "Night (10PM-6AM)"},
		RequiredPPE:      []string{"Helmet", "Boots", "Vest", "Lamp", "Detector", "Rescuer"},
		Notifications: domain.NotificationSettings{
			Email:    true,
			SMS:      false,
			Push:     true,
			Critical: true,
			Warning:  true,
			Info:     false,
		},
	}
}

func zipSeries(labels []string, values []int) []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0, len(labels))
	for i, label := range labels {
		points = append(points, domain.SeriesPoint{Label: label, Value: values[i]})
	}
	return points
}
