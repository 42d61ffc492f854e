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

// ── career errors ──

var ErrCareerNotFound = errors.New("career not found")

// CareerService is the career dimension business interface. Creating or
// updating a career always resolves its faculty first.
type CareerService interface {
	Create(ctx context.Context, req *dto.CreateCareerRequest) (*model.Career, error)
	GetByID(ctx context.Context, id string) (*model.Career, error)
	// GetByName returns (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*model.Career, error)
	List(ctx context.Context) ([]model.Career, int64, error)
	Update(ctx context.Context, id string, req *dto.CreateCareerRequest) (*model.Career, error)
	Delete(ctx context.Context, id string) error
}

type careerService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewCareerService creates a CareerService instance.
func NewCareerService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) CareerService {
	return &careerService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *careerService) Create(ctx context.Context, req *dto.CreateCareerRequest) (*model.Career, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, req.FacultyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("failed to retrieve faculty", zap.String("id", req.FacultyID), zap.Error(err))
		return nil, errors.New("failed to create career")
	}

	career := &model.Career{
		Name:      req.Name,
		Code:      req.Code,
		FacultyID: faculty.ID,
		Faculty:   faculty,
	}
	if err := s.repo.Career.Create(ctx, career); err != nil {
		s.logger.Error("failed to create career", zap.String("name", req.Name), zap.Error(err))
		return nil, errors.New("failed to create career")
	}
	s.cache.InvalidateReports(ctx)
	return career, nil
}

func (s *careerService) GetByID(ctx context.Context, id string) (*model.Career, error) {
	career, err := s.repo.Career.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerNotFound
		}
		s.logger.Error("failed to retrieve career", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to retrieve career")
	}
	return career, nil
}

func (s *careerService) GetByName(ctx context.Context, name string) (*model.Career, error) {
	career, err := s.repo.Career.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to retrieve career", zap.String("name", name), zap.Error(err))
		return nil, errors.New("failed to retrieve career")
	}
	return career, nil
}

func (s *careerService) List(ctx context.Context) ([]model.Career, int64, error) {
	careers, count, err := s.repo.Career.List(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve careers", zap.Error(err))
		return nil, 0, errors.New("failed to retrieve careers")
	}
	return careers, count, nil
}

func (s *careerService) Update(ctx context.Context, id string, req *dto.CreateCareerRequest) (*model.Career, error) {
	career, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The faculty reference is re-resolved from the supplied id.
	faculty, err := s.repo.Faculty.GetByID(ctx, req.FacultyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("failed to retrieve faculty", zap.String("id", req.FacultyID), zap.Error(err))
		return nil, errors.New("failed to update career")
	}

	career.Name = req.Name
	career.Code = req.Code
	career.FacultyID = faculty.ID
	career.Faculty = faculty

	if err := s.repo.Career.Update(ctx, career); err != nil {
		s.logger.Error("failed to update career", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to update career")
	}
	s.cache.InvalidateReports(ctx)
	return career, nil
}

func (s *careerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Career.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCareerNotFound
		}
		s.logger.Error("failed to delete career", zap.String("id", id), zap.Error(err))
		return errors.New("failed to delete career")
	}
	s.cache.InvalidateReports(ctx)
	return nil
}
