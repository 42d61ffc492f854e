package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/model"
	"github.com/LuiSauter/data-mart/internal/repository"
	"github.com/LuiSauter/data-mart/pkg/cache"
)

// ── semester errors ──

var (
	ErrSemesterNotFound = errors.New("semester not found")
	ErrSemesterExists   = errors.New("semester already exists")
)

// SemesterService is the semester dimension business interface. The natural
// key is the (period, year) pair.
type SemesterService interface {
	Create(ctx context.Context, req *dto.CreateSemesterRequest) (*model.Semester, error)
	GetByID(ctx context.Context, id string) (*model.Semester, error)
	// GetByPeriodAndYear returns (nil, nil) when absent.
	GetByPeriodAndYear(ctx context.Context, period, year string) (*model.Semester, error)
	List(ctx context.Context) ([]model.Semester, int64, error)
	Update(ctx context.Context, id string, req *dto.CreateSemesterRequest) (*model.Semester, error)
	Delete(ctx context.Context, id string) error
}

type semesterService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewSemesterService creates a SemesterService instance.
func NewSemesterService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *semesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*model.Semester, error) {
	// Explicit pre-check on the natural key; the unique constraint in the
	// store backs this up independently.
	existing, err := s.GetByPeriodAndYear(ctx, req.Period, req.Year)
	if err != nil {
		return nil, errors.New("failed to create semester")
	}
	if existing != nil {
		return nil, ErrSemesterExists
	}

	semester := &model.Semester{Period: req.Period, Year: req.Year}
	if err := s.repo.Semester.Create(ctx, semester); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSemesterExists
		}
		s.logger.Error("failed to create semester",
			zap.String("period", req.Period),
			zap.String("year", req.Year),
			zap.Error(err),
		)
		return nil, errors.New("failed to create semester")
	}
	s.cache.InvalidateReports(ctx)
	return semester, nil
}

func (s *semesterService) GetByID(ctx context.Context, id string) (*model.Semester, error) {
	semester, err := s.repo.Semester.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("failed to retrieve semester", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to retrieve semester")
	}
	return semester, nil
}

func (s *semesterService) GetByPeriodAndYear(ctx context.Context, period, year string) (*model.Semester, error) {
	semester, err := s.repo.Semester.GetByPeriodAndYear(ctx, period, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to retrieve semester",
			zap.String("period", period),
			zap.String("year", year),
			zap.Error(err),
		)
		return nil, errors.New("failed to retrieve semester")
	}
	return semester, nil
}

func (s *semesterService) List(ctx context.Context) ([]model.Semester, int64, error) {
	semesters, count, err := s.repo.Semester.List(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve semesters", zap.Error(err))
		return nil, 0, errors.New("failed to retrieve semesters")
	}
	return semesters, count, nil
}

func (s *semesterService) Update(ctx context.Context, id string, req *dto.CreateSemesterRequest) (*model.Semester, error) {
	semester, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	semester.Period = req.Period
	semester.Year = req.Year
	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSemesterExists
		}
		s.logger.Error("failed to update semester", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to update semester")
	}
	s.cache.InvalidateReports(ctx)
	return semester, nil
}

func (s *semesterService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Semester.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSemesterNotFound
		}
		s.logger.Error("failed to delete semester", zap.String("id", id), zap.Error(err))
		return errors.New("failed to delete semester")
	}
	s.cache.InvalidateReports(ctx)
	return nil
}
