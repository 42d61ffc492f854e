package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/LuiSauter/data-mart/internal/model"
)

// CareerRepository is the career dimension data-access interface.
type CareerRepository interface {
	Create(ctx context.Context, career *model.Career) error
	GetByID(ctx context.Context, id string) (*model.Career, error)
	GetByName(ctx context.Context, name string) (*model.Career, error)
	List(ctx context.Context) ([]model.Career, int64, error)
	Update(ctx context.Context, career *model.Career) error
	Delete(ctx context.Context, id string) error
}

type careerRepo struct {
	db *gorm.DB
}

// NewCareerRepo creates a CareerRepository instance.
func NewCareerRepo(db *gorm.DB) CareerRepository {
	return &careerRepo{db: db}
}

func (r *careerRepo) Create(ctx context.Context, career *model.Career) error {
	return r.db.WithContext(ctx).Create(career).Error
}

func (r *careerRepo) GetByID(ctx context.Context, id string) (*model.Career, error) {
	var career model.Career
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Where("id = ?", id).
		First(&career).Error
	if err != nil {
		return nil, err
	}
	return &career, nil
}

func (r *careerRepo) GetByName(ctx context.Context, name string) (*model.Career, error) {
	var career model.Career
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Where("name = ?", name).
		First(&career).Error
	if err != nil {
		return nil, err
	}
	return &career, nil
}

func (r *careerRepo) List(ctx context.Context) ([]model.Career, int64, error) {
	var careers []model.Career
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Order("name ASC").
		Find(&careers).Error
	return careers, int64(len(careers)), err
}

func (r *careerRepo) Update(ctx context.Context, career *model.Career) error {
	return r.db.WithContext(ctx).Save(career).Error
}

func (r *careerRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Career{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
