package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// GroupDimension selects which dimension an aggregation report groups by.
type GroupDimension string

const (
	GroupFaculty  GroupDimension = "faculty"
	GroupCareer   GroupDimension = "career"
	GroupLocality GroupDimension = "locality"
	GroupMode     GroupDimension = "mode"
	GroupSemester GroupDimension = "semester"
)

// AggregateOp is the aggregation operator applied to a measure column.
type AggregateOp string

const (
	OpSum AggregateOp = "sum"
	OpAvg AggregateOp = "avg"
)

// AggregateColumn is one requested aggregate: an operator over a fact
// column, exposed under a qualified alias ("sum_t_inscritos", "avg_ppa").
type AggregateColumn struct {
	Op        AggregateOp
	Attribute string
	Alias     string
}

// ReportFilters narrows an aggregation by dimension natural keys. Empty
// fields are inactive. SemesterPeriod and SemesterYear are only ever set
// together; the service drops a half-specified pair before it gets here.
type ReportFilters struct {
	FacultyName    string
	CareerName     string
	LocalityName   string
	ModeName       string
	SemesterPeriod string
	SemesterYear   string
}

// ReportRepository runs grouped aggregations over the indicator fact table.
type ReportRepository interface {
	// Aggregate returns one raw row per group: the grouping label under key
	// "label" plus one value per aggregate column under its alias.
	Aggregate(ctx context.Context, group GroupDimension, cols []AggregateColumn, filters ReportFilters) ([]map[string]interface{}, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo creates a ReportRepository instance.
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Aggregate(ctx context.Context, group GroupDimension, cols []AggregateColumn, filters ReportFilters) ([]map[string]interface{}, error) {
	for _, col := range cols {
		if !safeIdentifier(col.Attribute) || !safeIdentifier(col.Alias) {
			return nil, fmt.Errorf("unsafe aggregate identifier %q", col.Attribute)
		}
	}

	q := r.db.WithContext(ctx)
	joined := map[string]bool{"indicator": true, string(group): true}

	var labelSelect, groupBy string
	switch group {
	case GroupFaculty:
		q = q.Table("faculty").
			Joins("LEFT JOIN career ON career.faculty_id = faculty.id").
			Joins("LEFT JOIN indicator ON indicator.career_id = career.id")
		joined["career"] = true
		labelSelect = `faculty.name AS "label"`
		groupBy = "faculty.name"
	case GroupCareer:
		q = q.Table("career").
			Joins("LEFT JOIN indicator ON indicator.career_id = career.id")
		labelSelect = `career.name AS "label"`
		groupBy = "career.name"
	case GroupLocality:
		q = q.Table("locality").
			Joins("LEFT JOIN indicator ON indicator.locality_id = locality.id")
		labelSelect = `locality.name AS "label"`
		groupBy = "locality.name"
	case GroupMode:
		q = q.Table("mode").
			Joins("LEFT JOIN indicator ON indicator.mode_id = mode.id")
		labelSelect = `mode.name AS "label"`
		groupBy = "mode.name"
	case GroupSemester:
		q = q.Table("semester").
			Joins("LEFT JOIN indicator ON indicator.semester_id = semester.id")
		// Grouping is on the (period, year) pair but the label keeps only
		// the year, matching the report format clients already consume.
		labelSelect = `semester.year AS "label"`
		groupBy = "semester.period, semester.year"
	default:
		return nil, fmt.Errorf("unknown group dimension %q", group)
	}

	joinCareer := func() {
		if !joined["career"] {
			q = q.Joins("LEFT JOIN career ON career.id = indicator.career_id")
			joined["career"] = true
		}
	}

	if filters.FacultyName != "" {
		joinCareer()
		if !joined["faculty"] {
			q = q.Joins("LEFT JOIN faculty ON faculty.id = career.faculty_id")
			joined["faculty"] = true
		}
		q = q.Where("faculty.name = ?", filters.FacultyName)
	}
	if filters.CareerName != "" {
		joinCareer()
		q = q.Where("career.name = ?", filters.CareerName)
	}
	if filters.LocalityName != "" {
		if !joined["locality"] {
			q = q.Joins("LEFT JOIN locality ON locality.id = indicator.locality_id")
			joined["locality"] = true
		}
		q = q.Where("locality.name = ?", filters.LocalityName)
	}
	if filters.ModeName != "" {
		if !joined["mode"] {
			q = q.Joins("LEFT JOIN mode ON mode.id = indicator.mode_id")
			joined["mode"] = true
		}
		q = q.Where("mode.name = ?", filters.ModeName)
	}
	if filters.SemesterPeriod != "" && filters.SemesterYear != "" {
		if !joined["semester"] {
			q = q.Joins("LEFT JOIN semester ON semester.id = indicator.semester_id")
			joined["semester"] = true
		}
		q = q.Where("semester.period = ?", filters.SemesterPeriod).
			Where("semester.year = ?", filters.SemesterYear)
	}

	selects := make([]string, 0, len(cols)+1)
	selects = append(selects, labelSelect)
	for _, col := range cols {
		switch col.Op {
		case OpAvg:
			selects = append(selects, fmt.Sprintf(`ROUND(AVG(indicator.%s)::numeric, 2) AS "%s"`, col.Attribute, col.Alias))
		default:
			selects = append(selects, fmt.Sprintf(`SUM(indicator.%s) AS "%s"`, col.Attribute, col.Alias))
		}
	}

	var rows []map[string]interface{}
	err := q.Select(strings.Join(selects, ", ")).
		Group(groupBy).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// safeIdentifier reports whether s can be interpolated as a column or alias.
// Attributes are validated against the known measure set upstream; this is a
// second fence in front of the SQL text.
func safeIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
