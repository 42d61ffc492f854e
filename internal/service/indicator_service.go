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

// ── indicator errors ──

var (
	ErrIndicatorNotFound        = errors.New("indicator not found")
	ErrIndicatorRelationMissing = errors.New("some of the related entities were not found")
)

// IndicatorService is the fact table business interface. Every write
// resolves all four dimension references before touching the row.
type IndicatorService interface {
	Create(ctx context.Context, req *dto.CreateIndicatorRequest) (*model.Indicator, error)
	GetByID(ctx context.Context, id string) (*model.Indicator, error)
	List(ctx context.Context) ([]model.Indicator, int64, error)
	Update(ctx context.Context, id string, req *dto.CreateIndicatorRequest) (*model.Indicator, error)
	Delete(ctx context.Context, id string) error
}

type indicatorService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewIndicatorService creates an IndicatorService instance.
func NewIndicatorService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) IndicatorService {
	return &indicatorService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *indicatorService) Create(ctx context.Context, req *dto.CreateIndicatorRequest) (*model.Indicator, error) {
	if err := s.resolveRelations(ctx, req); err != nil {
		return nil, err
	}

	indicator := indicatorFromRequest(req)
	if err := s.repo.Indicator.Create(ctx, indicator); err != nil {
		s.logger.Error("failed to create indicator", zap.Error(err))
		return nil, errors.New("failed to create indicator")
	}
	s.cache.InvalidateReports(ctx)
	return indicator, nil
}

func (s *indicatorService) GetByID(ctx context.Context, id string) (*model.Indicator, error) {
	indicator, err := s.repo.Indicator.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndicatorNotFound
		}
		s.logger.Error("failed to retrieve indicator", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to retrieve indicator")
	}
	return indicator, nil
}

func (s *indicatorService) List(ctx context.Context) ([]model.Indicator, int64, error) {
	indicators, count, err := s.repo.Indicator.List(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve indicators", zap.Error(err))
		return nil, 0, errors.New("failed to retrieve indicators")
	}
	return indicators, count, nil
}

func (s *indicatorService) Update(ctx context.Context, id string, req *dto.CreateIndicatorRequest) (*model.Indicator, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveRelations(ctx, req); err != nil {
		return nil, err
	}

	updated := indicatorFromRequest(req)
	updated.BaseModel = existing.BaseModel
	if err := s.repo.Indicator.Update(ctx, updated); err != nil {
		s.logger.Error("failed to update indicator", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to update indicator")
	}
	s.cache.InvalidateReports(ctx)
	return updated, nil
}

func (s *indicatorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Indicator.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIndicatorNotFound
		}
		s.logger.Error("failed to delete indicator", zap.String("id", id), zap.Error(err))
		return errors.New("failed to delete indicator")
	}
	s.cache.InvalidateReports(ctx)
	return nil
}

// resolveRelations checks all four dimension references. The check is
// all-or-nothing: a single missing dimension fails the whole write and
// nothing is persisted.
func (s *indicatorService) resolveRelations(ctx context.Context, req *dto.CreateIndicatorRequest) error {
	lookups := []struct {
		name string
		find func() error
	}{
		{"career", func() error { _, err := s.repo.Career.GetByID(ctx, req.CareerID); return err }},
		{"locality", func() error { _, err := s.repo.Locality.GetByID(ctx, req.LocalityID); return err }},
		{"mode", func() error { _, err := s.repo.Mode.GetByID(ctx, req.ModeID); return err }},
		{"semester", func() error { _, err := s.repo.Semester.GetByID(ctx, req.SemesterID); return err }},
	}

	for _, lookup := range lookups {
		if err := lookup.find(); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIndicatorRelationMissing
			}
			s.logger.Error("failed to resolve indicator relation",
				zap.String("relation", lookup.name),
				zap.Error(err),
			)
			return errors.New("failed to resolve indicator relations")
		}
	}
	return nil
}

func indicatorFromRequest(req *dto.CreateIndicatorRequest) *model.Indicator {
	return &model.Indicator{
		CareerID:              req.CareerID,
		LocalityID:            req.LocalityID,
		ModeID:                req.ModeID,
		SemesterID:            req.SemesterID,
		TInscritos:            *req.TInscritos,
		TNuevos:               *req.TNuevos,
		TAnteriores:           *req.TAnteriores,
		MatriculasInscritas:   *req.MatriculasInscritas,
		SinNota:               *req.SinNota,
		SinNotaPercent:        *req.SinNotaPercent,
		Aprobados:             *req.Aprobados,
		AprobadosPercent:      *req.AprobadosPercent,
		Reprobados:            *req.Reprobados,
		ReprobadosPercent:     *req.ReprobadosPercent,
		ReprobadosCon0:        *req.ReprobadosCon0,
		ReprobadosCon0Percent: *req.ReprobadosCon0Percent,
		Moras:                 *req.Moras,
		MorasPercent:          *req.MorasPercent,
		Retirados:             *req.Retirados,
		PPA:                   req.PPA,
		PPS:                   req.PPS,
		PPA1:                  req.PPA1,
		PPAC:                  req.PPAC,
		Egresados:             *req.Egresados,
		Titulados:             *req.Titulados,
	}
}
