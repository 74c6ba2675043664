package domain

// SeriesPoint is one labeled value in a chart series.
type SeriesPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ReportSeries is a named chart series on the reports view.
type ReportSeries struct {
	Name   string        `json:"name"`
	Points []SeriesPoint `json:"points"`
}

// DepartmentReport summarizes weekly compliance for one department.
type DepartmentReport struct {
	Department string `json:"department"`
	Compliance int    `json:"compliance"`
	Violations int    `json:"violations"`
	Trend      string `json:"trend"`
}

// Report is the full payload served to the reports view.
type Report struct {
	TimeRange   string             `json:"time_range"`
	Series      []ReportSeries     `json:"series"`
	Departments []DepartmentReport `json:"departments"`
}
