package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/model"
)

// ModeRepository is the delivery-mode dimension data-access interface.
type ModeRepository interface {
	Create(ctx context.Context, mode *model.Mode) error
	GetByID(ctx context.Context, id string) (*model.Mode, error)
	GetByName(ctx context.Context, name string) (*model.Mode, error)
	List(ctx context.Context) ([]model.Mode, int64, error)
	Update(ctx context.Context, mode *model.Mode) error
	Delete(ctx context.Context, id string) error
}

type modeRepo struct {
	db *gorm.DB
}

// NewModeRepo creates a ModeRepository instance.
func NewModeRepo(db *gorm.DB) ModeRepository {
	return &modeRepo{db: db}
}

func (r *modeRepo) Create(ctx context.Context, mode *model.Mode) error {
	return r.db.WithContext(ctx).Create(mode).Error
}

func (r *modeRepo) GetByID(ctx context.Context, id string) (*model.Mode, error) {
	var mode model.Mode
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&mode).Error
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

func (r *modeRepo) GetByName(ctx context.Context, name string) (*model.Mode, error) {
	var mode model.Mode
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&mode).Error
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

func (r *modeRepo) List(ctx context.Context) ([]model.Mode, int64, error) {
	var modes []model.Mode
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&modes).Error
	return modes, int64(len(modes)), err
}

func (r *modeRepo) Update(ctx context.Context, mode *model.Mode) error {
	return r.db.WithContext(ctx).Save(mode).Error
}

func (r *modeRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Mode{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
