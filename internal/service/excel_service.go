package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/model"
	"github.com/LuiSauter/data-mart/internal/repository"
	"github.com/LuiSauter/data-mart/pkg/cache"
)

// ── upload errors ──

var (
	ErrUploadBadFile  = errors.New("file is not a readable workbook")
	ErrUploadNoSheet  = errors.New("workbook has no sheets")
	ErrUploadNoRows   = errors.New("workbook has no data rows")
	ErrUploadSaveFail = errors.New("failed to save data")
)

// Source column headers, exactly as they appear in the institutional export.
const (
	colFaculty  = "FAC NOMBRE_FACULTAD"
	colMode     = "MODALIDAD T"
	colPeriod   = "Periodo"
	colLocality = "LOCALIDAD"
	colCareer   = "CARRE NOMBRE_CARRERA"
)

// measure columns
const (
	colTInscritos   = "_INS"
	colTNuevos      = "T_NUE"
	colTAnteriores  = "T_ANT"
	colMatriculas   = "MAT_INS"
	colSinNota      = "SIN_NOT"
	colSinNotaPct   = "%SNOT"
	colAprobados    = "APROBAD"
	colAprobadosPct = "%APRO"
	colReprobados   = "REPROBA"
	colReprobPct    = "%REPR"
	colReprobCon0   = "R_CON_0"
	colReprob0Pct   = "%REP0"
	colMoras        = "MORAS"
	colMorasPct     = "%MORA"
	colRetirados    = "RETIR"
	colPPA          = "PPA"
	colPPS          = "PPS"
	colPPA1         = "PPA1"
	colPPAC         = "PPAC"
	colEgresados    = "EGRE"
	colTitulados    = "TIT"
)

// ExcelService ingests the institutional XLSX export into the fact table.
//
// Rows are processed strictly in source order, one at a time. Consecutive
// rows routinely reference the same not-yet-created dimension value and
// get-or-create is unguarded, so parallel row processing would create
// duplicate dimension rows. The run is fail-fast: the first bad row aborts
// the upload, and dimension rows created before the failure stay committed
// (there is no cross-row transaction; partial progress is intended so a
// corrected file can be re-uploaded).
type ExcelService interface {
	ProcessUpload(ctx context.Context, r io.Reader) (*dto.UploadResult, error)
}

type excelService struct {
	faculty  FacultyService
	mode     ModeService
	semester SemesterService
	locality LocalityService
	career   CareerService
	repo     *repository.Repository
	cache    *cache.Client
	logger   *zap.Logger
}

// NewExcelService creates an ExcelService instance.
func NewExcelService(
	faculty FacultyService,
	mode ModeService,
	semester SemesterService,
	locality LocalityService,
	career CareerService,
	repo *repository.Repository,
	cacheClient *cache.Client,
	logger *zap.Logger,
) ExcelService {
	return &excelService{
		faculty:  faculty,
		mode:     mode,
		semester: semester,
		locality: locality,
		career:   career,
		repo:     repo,
		cache:    cacheClient,
		logger:   logger,
	}
}

func (s *excelService) ProcessUpload(ctx context.Context, r io.Reader) (*dto.UploadResult, error) {
	records, err := parseWorkbook(r)
	if err != nil {
		s.logger.Error("failed to parse workbook", zap.Error(err))
		return nil, err
	}

	processed := 0
	for i, record := range records {
		if err := s.ingestRow(ctx, record); err != nil {
			// excel rows are 1-based and row 1 is the header
			s.logger.Error("failed to save row",
				zap.Int("row", i+2),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: row %d: %v", ErrUploadSaveFail, i+2, err)
		}
		processed++
	}

	s.cache.InvalidateReports(ctx)
	s.logger.Info("upload processed", zap.Int("rows", processed))
	return &dto.UploadResult{Processed: processed}, nil
}

// parseWorkbook reads the first sheet into one header→cell map per data row.
func parseWorkbook(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadBadFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrUploadNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrUploadNoRows
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *excelService) ingestRow(ctx context.Context, record map[string]string) error {
	faculty, err := s.resolveFaculty(ctx, record[colFaculty])
	if err != nil {
		return err
	}
	mode, err := s.resolveMode(ctx, record[colMode])
	if err != nil {
		return err
	}
	semester, err := s.resolveSemester(ctx, record[colPeriod])
	if err != nil {
		return err
	}
	locality, err := s.resolveLocality(ctx, record[colLocality])
	if err != nil {
		return err
	}
	career, err := s.resolveCareer(ctx, record[colCareer], faculty.ID)
	if err != nil {
		return err
	}

	indicator, err := indicatorFromRecord(record)
	if err != nil {
		return err
	}
	indicator.CareerID = career.ID
	indicator.LocalityID = locality.ID
	indicator.ModeID = mode.ID
	indicator.SemesterID = semester.ID

	if err := s.repo.Indicator.Create(ctx, indicator); err != nil {
		return fmt.Errorf("failed to create indicator: %w", err)
	}
	return nil
}

func (s *excelService) resolveFaculty(ctx context.Context, name string) (*model.Faculty, error) {
	if name == "" {
		return nil, fmt.Errorf("missing column %q", colFaculty)
	}
	faculty, err := s.faculty.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return s.faculty.Create(ctx, &dto.CreateFacultyRequest{Name: name})
	}
	return faculty, nil
}

func (s *excelService) resolveMode(ctx context.Context, name string) (*model.Mode, error) {
	if name == "" {
		return nil, fmt.Errorf("missing column %q", colMode)
	}
	mode, err := s.mode.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if mode == nil {
		return s.mode.Create(ctx, &dto.CreateModeRequest{Name: name})
	}
	return mode, nil
}

// resolveSemester splits the "year-period" token on its first dash and
// resolves the pair.
func (s *excelService) resolveSemester(ctx context.Context, token string) (*model.Semester, error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid period token %q in column %q", token, colPeriod)
	}
	year, period := parts[0], parts[1]

	semester, err := s.semester.GetByPeriodAndYear(ctx, period, year)
	if err != nil {
		return nil, err
	}
	if semester == nil {
		return s.semester.Create(ctx, &dto.CreateSemesterRequest{Period: period, Year: year})
	}
	return semester, nil
}

func (s *excelService) resolveLocality(ctx context.Context, name string) (*model.Locality, error) {
	if name == "" {
		return nil, fmt.Errorf("missing column %q", colLocality)
	}
	locality, err := s.locality.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if locality == nil {
		return s.locality.Create(ctx, &dto.CreateLocalityRequest{Name: name})
	}
	return locality, nil
}

func (s *excelService) resolveCareer(ctx context.Context, name, facultyID string) (*model.Career, error) {
	if name == "" {
		return nil, fmt.Errorf("missing column %q", colCareer)
	}
	career, err := s.career.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if career == nil {
		return s.career.Create(ctx, &dto.CreateCareerRequest{Name: name, FacultyID: facultyID})
	}
	return career, nil
}

func indicatorFromRecord(record map[string]string) (*model.Indicator, error) {
	indicator := &model.Indicator{}
	var err error

	intFields := []struct {
		col string
		dst *int
	}{
		{colTInscritos, &indicator.TInscritos},
		{colTNuevos, &indicator.TNuevos},
		{colTAnteriores, &indicator.TAnteriores},
		{colMatriculas, &indicator.MatriculasInscritas},
		{colSinNota, &indicator.SinNota},
		{colAprobados, &indicator.Aprobados},
		{colReprobados, &indicator.Reprobados},
		{colReprobCon0, &indicator.ReprobadosCon0},
		{colMoras, &indicator.Moras},
		{colRetirados, &indicator.Retirados},
		{colEgresados, &indicator.Egresados},
		{colTitulados, &indicator.Titulados},
	}
	for _, f := range intFields {
		if *f.dst, err = parseCount(record[f.col], f.col); err != nil {
			return nil, err
		}
	}

	floatFields := []struct {
		col string
		dst *float64
	}{
		{colSinNotaPct, &indicator.SinNotaPercent},
		{colAprobadosPct, &indicator.AprobadosPercent},
		{colReprobPct, &indicator.ReprobadosPercent},
		{colReprob0Pct, &indicator.ReprobadosCon0Percent},
		{colMorasPct, &indicator.MorasPercent},
	}
	for _, f := range floatFields {
		if *f.dst, err = parsePercent(record[f.col], f.col); err != nil {
			return nil, err
		}
	}

	optionalFields := []struct {
		col string
		dst **float64
	}{
		{colPPA, &indicator.PPA},
		{colPPS, &indicator.PPS},
		{colPPA1, &indicator.PPA1},
		{colPPAC, &indicator.PPAC},
	}
	for _, f := range optionalFields {
		if *f.dst, err = parseOptionalAverage(record[f.col], f.col); err != nil {
			return nil, err
		}
	}

	return indicator, nil
}

// parseCount reads a required integer cell; the export occasionally styles
// counts with a decimal point, so the text is parsed as a float first.
func parseCount(value, col string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("missing numeric value in column %q", col)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q in column %q", value, col)
	}
	return int(f), nil
}

// parsePercent reads a required decimal cell.
func parsePercent(value, col string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("missing numeric value in column %q", col)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q in column %q", value, col)
	}
	return f, nil
}

// parseOptionalAverage reads one of the weighted-average cells, absent in
// some source files. A blank cell stays nil.
func parseOptionalAverage(value, col string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value %q in column %q", value, col)
	}
	return &f, nil
}
