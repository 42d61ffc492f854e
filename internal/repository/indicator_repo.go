package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/model"
)

// IndicatorRepository is the fact table data-access interface.
type IndicatorRepository interface {
	Create(ctx context.Context, indicator *model.Indicator) error
	GetByID(ctx context.Context, id string) (*model.Indicator, error)
	List(ctx context.Context) ([]model.Indicator, int64, error)
	Update(ctx context.Context, indicator *model.Indicator) error
	Delete(ctx context.Context, id string) error
}

type indicatorRepo struct {
	db *gorm.DB
}

// NewIndicatorRepo creates an IndicatorRepository instance.
func NewIndicatorRepo(db *gorm.DB) IndicatorRepository {
	return &indicatorRepo{db: db}
}

func (r *indicatorRepo) Create(ctx context.Context, indicator *model.Indicator) error {
	return r.db.WithContext(ctx).Create(indicator).Error
}

func (r *indicatorRepo) GetByID(ctx context.Context, id string) (*model.Indicator, error) {
	var indicator model.Indicator
	err := r.db.WithContext(ctx).
		Preload("Career").
		Preload("Career.Faculty").
		Preload("Locality").
		Preload("Mode").
		Preload("Semester").
		Where("id = ?", id).
		First(&indicator).Error
	if err != nil {
		return nil, err
	}
	return &indicator, nil
}

func (r *indicatorRepo) List(ctx context.Context) ([]model.Indicator, int64, error) {
	var indicators []model.Indicator
	err := r.db.WithContext(ctx).
		Preload("Career").
		Preload("Career.Faculty").
		Preload("Locality").
		Preload("Mode").
		Preload("Semester").
		Find(&indicators).Error
	return indicators, int64(len(indicators)), err
}

func (r *indicatorRepo) Update(ctx context.Context, indicator *model.Indicator) error {
	return r.db.WithContext(ctx).Save(indicator).Error
}

func (r *indicatorRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Indicator{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
