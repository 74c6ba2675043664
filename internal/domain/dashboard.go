package domain

// DashboardStats holds the headline figures on the dashboard view.
type DashboardStats struct {
	OverallCompliance   int `json:"overall_compliance"`
	ActiveWorkers       int `json:"active_workers"`
	WorkersUnderground  int `json:"workers_underground"`
	NonComplianceCount  int `json:"non_compliance_count"`
	TodayEntries        int `json:"today_entries"`
	YesterdayCompliance int `json:"yesterday_compliance"`
}

// Dashboard is the full payload served to the dashboard view.
type Dashboard struct {
	Stats            DashboardStats  `json:"stats"`
	ComplianceByHour []SeriesPoint   `json:"compliance_by_hour"`
	ViolationsByHour []SeriesPoint   `json:"violations_by_hour"`
	RecentActivity   []ActivityEntry `json:"recent_activity"`
}
