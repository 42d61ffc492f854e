package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/repository"
	"github.com/LuiSauter/data-mart/pkg/cache"
)

// ── report errors ──

var (
	ErrUnknownAttribute = errors.New("unknown indicator attribute")
	ErrReportFailed     = errors.New("failed to get aggregated results")
)

// ReportService serves dimension-grouped aggregations over the fact table.
// All five groupings run the same pipeline; they differ only in the grouping
// dimension and which filters can reach it.
type ReportService interface {
	FacultyReport(ctx context.Context, q *dto.FacultyReportQuery) ([]dto.ReportGroup, error)
	CareerReport(ctx context.Context, q *dto.CareerReportQuery) ([]dto.ReportGroup, error)
	LocalityReport(ctx context.Context, q *dto.LocalityReportQuery) ([]dto.ReportGroup, error)
	ModeReport(ctx context.Context, q *dto.ModeReportQuery) ([]dto.ReportGroup, error)
	SemesterReport(ctx context.Context, q *dto.SemesterReportQuery) ([]dto.ReportGroup, error)
}

type reportService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewReportService creates a ReportService instance. cacheClient may be nil.
func NewReportService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *reportService) FacultyReport(ctx context.Context, q *dto.FacultyReportQuery) ([]dto.ReportGroup, error) {
	filters := repository.ReportFilters{
		LocalityName: q.LocalityName,
		ModeName:     q.ModeName,
	}
	applySemesterPair(&filters, q.SemesterPeriod, q.SemesterYear)
	return s.run(ctx, repository.GroupFaculty, q.Attributes, filters)
}

func (s *reportService) CareerReport(ctx context.Context, q *dto.CareerReportQuery) ([]dto.ReportGroup, error) {
	filters := repository.ReportFilters{
		LocalityName: q.LocalityName,
		FacultyName:  q.FacultyName,
		ModeName:     q.ModeName,
	}
	applySemesterPair(&filters, q.SemesterPeriod, q.SemesterYear)
	return s.run(ctx, repository.GroupCareer, q.Attributes, filters)
}

func (s *reportService) LocalityReport(ctx context.Context, q *dto.LocalityReportQuery) ([]dto.ReportGroup, error) {
	filters := repository.ReportFilters{
		ModeName:    q.ModeName,
		FacultyName: q.FacultyName,
	}
	applySemesterPair(&filters, q.SemesterPeriod, q.SemesterYear)
	return s.run(ctx, repository.GroupLocality, q.Attributes, filters)
}

func (s *reportService) ModeReport(ctx context.Context, q *dto.ModeReportQuery) ([]dto.ReportGroup, error) {
	filters := repository.ReportFilters{
		LocalityName: q.LocalityName,
		FacultyName:  q.FacultyName,
	}
	applySemesterPair(&filters, q.SemesterPeriod, q.SemesterYear)
	return s.run(ctx, repository.GroupMode, q.Attributes, filters)
}

func (s *reportService) SemesterReport(ctx context.Context, q *dto.SemesterReportQuery) ([]dto.ReportGroup, error) {
	filters := repository.ReportFilters{
		LocalityName: q.LocalityName,
		FacultyName:  q.FacultyName,
		CareerName:   q.CareerName,
		ModeName:     q.ModeName,
	}
	return s.run(ctx, repository.GroupSemester, q.Attributes, filters)
}

// applySemesterPair sets the semester filter only when both halves of the
// natural key are present; a half-specified pair is ignored entirely.
func applySemesterPair(filters *repository.ReportFilters, period, year string) {
	if period == "" || year == "" {
		return
	}
	filters.SemesterPeriod = period
	filters.SemesterYear = year
}

func (s *reportService) run(ctx context.Context, group repository.GroupDimension, attrs []string, filters repository.ReportFilters) ([]dto.ReportGroup, error) {
	cols := make([]repository.AggregateColumn, 0, len(attrs))
	for _, attr := range attrs {
		if !IsIndicatorAttribute(attr) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, attr)
		}
		cols = append(cols, AggregateColumn(attr))
	}

	cacheKey := reportCacheKey(group, attrs, filters)
	if payload := s.cache.GetReport(ctx, cacheKey); payload != "" {
		var cached []dto.ReportGroup
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.repo.Report.Aggregate(ctx, group, cols, filters)
	if err != nil {
		s.logger.Error("aggregation query failed",
			zap.String("group", string(group)),
			zap.Strings("attributes", attrs),
			zap.Error(err),
		)
		return nil, ErrReportFailed
	}

	groups := make([]dto.ReportGroup, 0, len(rows))
	for _, row := range rows {
		g := dto.ReportGroup{
			Label:  toLabel(row["label"]),
			Values: make([]dto.ReportValue, 0, len(row)-1),
		}
		for key, raw := range row {
			if key == "label" {
				continue
			}
			g.Values = append(g.Values, dto.ReportValue{
				Label: AttributeLabel(key),
				Value: toNumber(raw),
			})
		}
		groups = append(groups, g)
	}

	if payload, err := json.Marshal(groups); err == nil {
		s.cache.SetReport(ctx, cacheKey, string(payload))
	}

	return groups, nil
}

func reportCacheKey(group repository.GroupDimension, attrs []string, f repository.ReportFilters) string {
	return strings.Join([]string{
		string(group),
		strings.Join(attrs, ","),
		f.FacultyName, f.CareerName, f.LocalityName, f.ModeName,
		f.SemesterPeriod, f.SemesterYear,
	}, "|")
}

func toLabel(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toNumber normalizes the driver's aggregate representation. SUM over a
// group with no facts comes back NULL and maps to zero.
func toNumber(v interface{}) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case float32:
		return float64(val)
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case []byte:
		f, _ := strconv.ParseFloat(string(val), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	default:
		return 0
	}
}
