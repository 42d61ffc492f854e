package service

import (
	"go.uber.org/zap"

	"github.com/LuiSauter/data-mart/internal/repository"
	"github.com/LuiSauter/data-mart/pkg/cache"
)

// Service aggregates every business interface.
type Service struct {
	Faculty   FacultyService
	Career    CareerService
	Locality  LocalityService
	Mode      ModeService
	Semester  SemesterService
	Indicator IndicatorService
	Report    ReportService
	Excel     ExcelService
}

// NewService wires the service graph. cacheClient may be nil when Redis is
// unavailable; services degrade to uncached operation.
func NewService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) *Service {
	faculty := NewFacultyService(repo, cacheClient, logger)
	career := NewCareerService(repo, cacheClient, logger)
	locality := NewLocalityService(repo, cacheClient, logger)
	mode := NewModeService(repo, cacheClient, logger)
	semester := NewSemesterService(repo, cacheClient, logger)
	indicator := NewIndicatorService(repo, cacheClient, logger)

	return &Service{
		Faculty:   faculty,
		Career:    career,
		Locality:  locality,
		Mode:      mode,
		Semester:  semester,
		Indicator: indicator,
		Report:    NewReportService(repo, cacheClient, logger),
		Excel:     NewExcelService(faculty, mode, semester, locality, career, repo, cacheClient, logger),
	}
}
