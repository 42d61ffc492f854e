package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/dto"
	"github.com/LuiSauter/data-mart/internal/model"
	"github.com/LuiSauter/data-mart/internal/repository"
	"github.com/LuiSauter/data-mart/pkg/cache"
)

// ── faculty errors ──

var (
	ErrFacultyNotFound   = errors.New("faculty not found")
	ErrFacultyNameExists = errors.New("faculty name already exists")
)

// FacultyService is the faculty dimension business interface.
type FacultyService interface {
	Create(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error)
	GetByID(ctx context.Context, id string) (*model.Faculty, error)
	// GetByName returns (nil, nil) when absent; ingestion builds its
	// get-or-create on top of this.
	GetByName(ctx context.Context, name string) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, int64, error)
	Update(ctx context.Context, id string, req *dto.CreateFacultyRequest) (*model.Faculty, error)
	Delete(ctx context.Context, id string) error
}

type facultyService struct {
	repo   *repository.Repository
	cache  *cache.Client
	logger *zap.Logger
}

// NewFacultyService creates a FacultyService instance.
func NewFacultyService(repo *repository.Repository, cacheClient *cache.Client, logger *zap.Logger) FacultyService {
	return &facultyService{repo: repo, cache: cacheClient, logger: logger}
}

func (s *facultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error) {
	faculty := &model.Faculty{Name: req.Name}
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFacultyNameExists
		}
		s.logger.Error("failed to create faculty", zap.String("name", req.Name), zap.Error(err))
		return nil, errors.New("failed to create faculty")
	}
	s.cache.InvalidateReports(ctx)
	return faculty, nil
}

func (s *facultyService) GetByID(ctx context.Context, id string) (*model.Faculty, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("failed to retrieve faculty", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to retrieve faculty")
	}
	return faculty, nil
}

func (s *facultyService) GetByName(ctx context.Context, name string) (*model.Faculty, error) {
	faculty, err := s.repo.Faculty.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to retrieve faculty", zap.String("name", name), zap.Error(err))
		return nil, errors.New("failed to retrieve faculty")
	}
	return faculty, nil
}

func (s *facultyService) List(ctx context.Context) ([]model.Faculty, int64, error) {
	faculties, count, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("failed to retrieve faculties", zap.Error(err))
		return nil, 0, errors.New("failed to retrieve faculties")
	}
	return faculties, count, nil
}

func (s *facultyService) Update(ctx context.Context, id string, req *dto.CreateFacultyRequest) (*model.Faculty, error) {
	faculty, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	faculty.Name = req.Name
	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrFacultyNameExists
		}
		s.logger.Error("failed to update faculty", zap.String("id", id), zap.Error(err))
		return nil, errors.New("failed to update faculty")
	}
	s.cache.InvalidateReports(ctx)
	return faculty, nil
}

func (s *facultyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Faculty.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyNotFound
		}
		s.logger.Error("failed to delete faculty", zap.String("id", id), zap.Error(err))
		return errors.New("failed to delete faculty")
	}
	s.cache.InvalidateReports(ctx)
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
