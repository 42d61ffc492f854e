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

// ── locality errors ──

var (
	ErrLocalityNotFound   = errors.New("locality not found")
	ErrLocalityNameExists = errors.New("locality name already exists")
)

// LocalityService is the locality dimension business interface.
type LocalityService interface {
	Create(ctx context.Context, req *dto.CreateLocalityRequest) (*model.Locality, error)
	GetByID(ctx context.Context, id string) (*model.Locality, error)
	// GetByName returns (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*model.Locality, error)
	List(ctx context.Context) ([]model.Locality, int64, error)
	Update(ctx context.Context, id string, req *dto.CreateLocalityRequest) (*model.Locality, error)
	Delete(ctx context.Context, id string) error
}

type localityService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewLocalityService creates a LocalityService instance.
func NewLocalityService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) LocalityService {
	return &localityService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *localityService) Create(ctx context.Context, req *dto.CreateLocalityRequest) (*model.Locality, error) {
	locality := &model.Locality{Name: req.Name}
	if err := s.repo.Locality.Create(ctx, locality); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrLocalityNameExists
		}
		s.logger.Error("failed to create locality", zap.String("name", req.Name), zap.Error(err))
		return nil, errors.New("failed to create locality")
	}
	s.cache.InvalidateReports(ctx)
	return locality, nil
}

func (s *localityService) GetByID(ctx context.Context, id string) (*model.Locality, error) {
	locality, err := s.repo.Locality.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocalityNotFound
		}
		s.logger.Error("failed to retrieve locality", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to retrieve locality")
	}
	return locality, nil
}

func (s *localityService) GetByName(ctx context.Context, name string) (*model.Locality, error) {
	locality, err := s.repo.Locality.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to retrieve locality", zap.String("name", name), zap.Error(err))
		return nil, errors.New("failed to retrieve locality")
	}
	return locality, nil
}

func (s *localityService) List(ctx context.Context) ([]model.Locality, int64, error) {
	localities, count, err := s.repo.Locality.List(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve localities", zap.Error(err))
		return nil, 0, errors.New("failed to retrieve localities")
	}
	return localities, count, nil
}

func (s *localityService) Update(ctx context.Context, id string, req *dto.CreateLocalityRequest) (*model.Locality, error) {
	locality, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	locality.Name = req.Name
	if err := s.repo.Locality.Update(ctx, locality); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrLocalityNameExists
		}
		s.logger.Error("failed to update locality", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to update locality")
	}
	s.cache.InvalidateReports(ctx)
	return locality, nil
}

func (s *localityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Locality.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocalityNotFound
		}
		s.logger.Error("failed to delete locality", zap.String("id", id), zap.Error(err))
		return errors.New("failed to delete locality")
	}
	s.cache.InvalidateReports(ctx)
	return nil
}
