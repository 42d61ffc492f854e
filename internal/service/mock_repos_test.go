package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/model"
	"github.com/LuiSauter/data-mart/internal/repository"
)

// Function-field mocks for the repository interfaces. Unset fields are
// treated as "record not found" for lookups and as success for writes.

type mockFacultyRepo struct {
	createFn    func(ctx context.Context, faculty *model.Faculty) error
	getByIDFn   func(ctx context.Context, id string) (*model.Faculty, error)
	getByNameFn func(ctx context.Context, name string) (*model.Faculty, error)
	listFn      func(ctx context.Context) ([]model.Faculty, int64, error)
	updateFn    func(ctx context.Context, faculty *model.Faculty) error
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockFacultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	if m.createFn != nil {
		return m.createFn(ctx, faculty)
	}
	return nil
}

func (m *mockFacultyRepo) GetByID(ctx context.Context, id string) (*model.Faculty, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) GetByName(ctx context.Context, name string) (*model.Faculty, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(ctx context.Context) ([]model.Faculty, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockFacultyRepo) Update(ctx context.Context, faculty *model.Faculty) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, faculty)
	}
	return nil
}

func (m *mockFacultyRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCareerRepo struct {
	createFn    func(ctx context.Context, career *model.Career) error
	getByIDFn   func(ctx context.Context, id string) (*model.Career, error)
	getByNameFn func(ctx context.Context, name string) (*model.Career, error)
	listFn      func(ctx context.Context) ([]model.Career, int64, error)
	updateFn    func(ctx context.Context, career *model.Career) error
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockCareerRepo) Create(ctx context.Context, career *model.Career) error {
	if m.createFn != nil {
		return m.createFn(ctx, career)
	}
	return nil
}

func (m *mockCareerRepo) GetByID(ctx context.Context, id string) (*model.Career, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCareerRepo) GetByName(ctx context.Context, name string) (*model.Career, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCareerRepo) List(ctx context.Context) ([]model.Career, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockCareerRepo) Update(ctx context.Context, career *model.Career) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, career)
	}
	return nil
}

func (m *mockCareerRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockLocalityRepo struct {
	createFn    func(ctx context.Context, locality *model.Locality) error
	getByIDFn   func(ctx context.Context, id string) (*model.Locality, error)
	getByNameFn func(ctx context.Context, name string) (*model.Locality, error)
	listFn      func(ctx context.Context) ([]model.Locality, int64, error)
	updateFn    func(ctx context.Context, locality *model.Locality) error
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockLocalityRepo) Create(ctx context.Context, locality *model.Locality) error {
	if m.createFn != nil {
		return m.createFn(ctx, locality)
	}
	return nil
}

func (m *mockLocalityRepo) GetByID(ctx context.Context, id string) (*model.Locality, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocalityRepo) GetByName(ctx context.Context, name string) (*model.Locality, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocalityRepo) List(ctx context.Context) ([]model.Locality, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockLocalityRepo) Update(ctx context.Context, locality *model.Locality) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, locality)
	}
	return nil
}

func (m *mockLocalityRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockModeRepo struct {
	createFn    func(ctx context.Context, mode *model.Mode) error
	getByIDFn   func(ctx context.Context, id string) (*model.Mode, error)
	getByNameFn func(ctx context.Context, name string) (*model.Mode, error)
	listFn      func(ctx context.Context) ([]model.Mode, int64, error)
	updateFn    func(ctx context.Context, mode *model.Mode) error
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockModeRepo) Create(ctx context.Context, mode *model.Mode) error {
	if m.createFn != nil {
		return m.createFn(ctx, mode)
	}
	return nil
}

func (m *mockModeRepo) GetByID(ctx context.Context, id string) (*model.Mode, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModeRepo) GetByName(ctx context.Context, name string) (*model.Mode, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockModeRepo) List(ctx context.Context) ([]model.Mode, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockModeRepo) Update(ctx context.Context, mode *model.Mode) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, mode)
	}
	return nil
}

func (m *mockModeRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockSemesterRepo struct {
	createFn             func(ctx context.Context, semester *model.Semester) error
	getByIDFn            func(ctx context.Context, id string) (*model.Semester, error)
	getByPeriodAndYearFn func(ctx context.Context, period, year string) (*model.Semester, error)
	listFn               func(ctx context.Context) ([]model.Semester, int64, error)
	updateFn             func(ctx context.Context, semester *model.Semester) error
	deleteFn             func(ctx context.Context, id string) error
}

func (m *mockSemesterRepo) Create(ctx context.Context, semester *model.Semester) error {
	if m.createFn != nil {
		return m.createFn(ctx, semester)
	}
	return nil
}

func (m *mockSemesterRepo) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetByPeriodAndYear(ctx context.Context, period, year string) (*model.Semester, error) {
	if m.getByPeriodAndYearFn != nil {
		return m.getByPeriodAndYearFn(ctx, period, year)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(ctx context.Context) ([]model.Semester, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockSemesterRepo) Update(ctx context.Context, semester *model.Semester) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, semester)
	}
	return nil
}

func (m *mockSemesterRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockIndicatorRepo struct {
	createFn  func(ctx context.Context, indicator *model.Indicator) error
	getByIDFn func(ctx context.Context, id string) (*model.Indicator, error)
	listFn    func(ctx context.Context) ([]model.Indicator, int64, error)
	updateFn  func(ctx context.Context, indicator *model.Indicator) error
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockIndicatorRepo) Create(ctx context.Context, indicator *model.Indicator) error {
	if m.createFn != nil {
		return m.createFn(ctx, indicator)
	}
	return nil
}

func (m *mockIndicatorRepo) GetByID(ctx context.Context, id string) (*model.Indicator, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIndicatorRepo) List(ctx context.Context) ([]model.Indicator, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, 0, nil
}

func (m *mockIndicatorRepo) Update(ctx context.Context, indicator *model.Indicator) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, indicator)
	}
	return nil
}

func (m *mockIndicatorRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockReportRepo struct {
	aggregateFn func(ctx context.Context, group repository.GroupDimension, cols []repository.AggregateColumn, filters repository.ReportFilters) ([]map[string]interface{}, error)
}

func (m *mockReportRepo) Aggregate(ctx context.Context, group repository.GroupDimension, cols []repository.AggregateColumn, filters repository.ReportFilters) ([]map[string]interface{}, error) {
	if m.aggregateFn != nil {
		return m.aggregateFn(ctx, group, cols, filters)
	}
	return nil, errors.New("aggregate not stubbed")
}

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		Faculty:   &mockFacultyRepo{},
		Career:    &mockCareerRepo{},
		Locality:  &mockLocalityRepo{},
		Mode:      &mockModeRepo{},
		Semester:  &mockSemesterRepo{},
		Indicator: &mockIndicatorRepo{},
		Report:    &mockReportRepo{},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
