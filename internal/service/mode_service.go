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

// ── mode errors ──

var (
	ErrModeNotFound   = errors.New("mode not found")
	ErrModeNameExists = errors.New("mode name already exists")
)

// ModeService is the delivery-mode dimension business interface.
type ModeService interface {
	Create(ctx context.Context, req *dto.CreateModeRequest) (*model.Mode, error)
	GetByID(ctx context.Context, id string) (*model.Mode, error)
	// GetByName returns (nil, nil) when absent.
	GetByName(ctx context.Context, name string) (*model.Mode, error)
	List(ctx context.Context) ([]model.Mode, int64, error)
	Update(ctx context.Context, id string, req *dto.CreateModeRequest) (*model.Mode, error)
	Delete(ctx context.Context, id string) error
}

type modeService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewModeService creates a ModeService instance.
func NewModeService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) ModeService {
	return &modeService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *modeService) Create(ctx context.Context, req *dto.CreateModeRequest) (*model.Mode, error) {
	mode := &model.Mode{Name: req.Name}
	if err := s.repo.Mode.Create(ctx, mode); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrModeNameExists
		}
		s.logger.Error("failed to create mode", zap.String("name", req.Name), zap.Error(err))
		return nil, errors.New("failed to create mode")
	}
	s.cache.InvalidateReports(ctx)
	return mode, nil
}

func (s *modeService) GetByID(ctx context.Context, id string) (*model.Mode, error) {
	mode, err := s.repo.Mode.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModeNotFound
		}
		s.logger.Error("failed to retrieve mode", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to retrieve mode")
	}
	return mode, nil
}

func (s *modeService) GetByName(ctx context.Context, name string) (*model.Mode, error) {
	mode, err := s.repo.Mode.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to retrieve mode", zap.String("name", name), zap.Error(err))
		return nil, errors.New("failed to retrieve mode")
	}
	return mode, nil
}

func (s *modeService) List(ctx context.Context) ([]model.Mode, int64, error) {
	modes, count, err := s.repo.Mode.List(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve modes", zap.Error(err))
		return nil, 0, errors.New("failed to retrieve modes")
	}
	return modes, count, nil
}

func (s *modeService) Update(ctx context.Context, id string, req *dto.CreateModeRequest) (*model.Mode, error) {
	mode, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mode.Name = req.Name
	if err := s.repo.Mode.Update(ctx, mode); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrModeNameExists
		}
		s.logger.Error("failed to update mode", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to update mode")
	}
	s.cache.InvalidateReports(ctx)
	return mode, nil
}

func (s *modeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Mode.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModeNotFound
		}
		s.logger.Error("failed to delete mode", zap.String("id", id), zap.Error(err))
		return errors.New("failed to delete mode")
	}
	s.cache.InvalidateReports(ctx)
	return nil
}
