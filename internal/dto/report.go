package dto

// Report query parameters. Each grouping dimension accepts the subset of
// filters that can reach it through the fact table; parameter names match
// the public API (localidadName is historical spelling, kept for clients).
// indicatorAttributes may repeat and names the measures to aggregate.

// FacultyReportQuery filters the faculty-grouped report.
type FacultyReportQuery struct {
	LocalityName   string   `form:"localidadName"`
	ModeName       string   `form:"modeName"`
	SemesterPeriod string   `form:"semesterPeriod"`
	SemesterYear   string   `form:"semesterYear"`
	Attributes     []string `form:"indicatorAttributes"`
}

// CareerReportQuery filters the career-grouped report.
type CareerReportQuery struct {
	LocalityName   string   `form:"localidadName"`
	FacultyName    string   `form:"facultyName"`
	ModeName       string   `form:"modeName"`
	SemesterPeriod string   `form:"semesterPeriod"`
	SemesterYear   string   `form:"semesterYear"`
	Attributes     []string `form:"indicatorAttributes"`
}

// LocalityReportQuery filters the locality-grouped report.
type LocalityReportQuery struct {
	ModeName       string   `form:"modeName"`
	FacultyName    string   `form:"facultyName"`
	SemesterPeriod string   `form:"semesterPeriod"`
	SemesterYear   string   `form:"semesterYear"`
	Attributes     []string `form:"indicatorAttributes"`
}

// ModeReportQuery filters the mode-grouped report.
type ModeReportQuery struct {
	LocalityName   string   `form:"localidadName"`
	FacultyName    string   `form:"facultyName"`
	SemesterPeriod string   `form:"semesterPeriod"`
	SemesterYear   string   `form:"semesterYear"`
	Attributes     []string `form:"indicatorAttributes"`
}

// SemesterReportQuery filters the semester-grouped report.
type SemesterReportQuery struct {
	LocalityName string   `form:"localidadName"`
	FacultyName  string   `form:"facultyName"`
	CareerName   string   `form:"careerName"`
	ModeName     string   `form:"modeName"`
	Attributes   []string `form:"indicatorAttributes"`
}

// ReportValue is one aggregated measure inside a group.
type ReportValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ReportGroup is one grouped row of an aggregation report. The order of
// Values follows map iteration over the raw result row and is not stable.
type ReportGroup struct {
	Label  string        `json:"label"`
	Values []ReportValue `json:"values"`
}

// UploadResult reports how many spreadsheet rows were persisted.
type UploadResult struct {
	Processed int `json:"processed"`
}
