package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/model"
)

// LocalityRepository is the locality dimension data-access interface.
type LocalityRepository interface {
	Create(ctx context.Context, locality *model.Locality) error
	GetByID(ctx context.Context, id string) (*model.Locality, error)
	GetByName(ctx context.Context, name string) (*model.Locality, error)
	List(ctx context.Context) ([]model.Locality, int64, error)
	Update(ctx context.Context, locality *model.Locality) error
	Delete(ctx context.Context, id string) error
}

type localityRepo struct {
	db *gorm.DB
}

// NewLocalityRepo creates a LocalityRepository instance.
func NewLocalityRepo(db *gorm.DB) LocalityRepository {
	return &localityRepo{db: db}
}

func (r *localityRepo) Create(ctx context.Context, locality *model.Locality) error {
	return r.db.WithContext(ctx).Create(locality).Error
}

func (r *localityRepo) GetByID(ctx context.Context, id string) (*model.Locality, error) {
	var locality model.Locality
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locality).Error
	if err != nil {
		return nil, err
	}
	return &locality, nil
}

func (r *localityRepo) GetByName(ctx context.Context, name string) (*model.Locality, error) {
	var locality model.Locality
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&locality).Error
	if err != nil {
		return nil, err
	}
	return &locality, nil
}

func (r *localityRepo) List(ctx context.Context) ([]model.Locality, int64, error) {
	var localities []model.Locality
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&localities).Error
	return localities, int64(len(localities)), err
}

func (r *localityRepo) Update(ctx context.Context, locality *model.Locality) error {
	return r.db.WithContext(ctx).Save(locality).Error
}

func (r *localityRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Locality{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
