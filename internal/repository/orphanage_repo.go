package repository

import (
	"context"
	"errors"

	"meallink/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrphanageRepository interface {
	Create(ctx context.Context, orphanage *entity.Orphanage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Orphanage, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Orphanage, error)
	ListApproved(ctx context.Context) ([]entity.Orphanage, error)
	// Approve reports false when no orphanage with the id exists.
	Approve(ctx context.Context, id uuid.UUID) (bool, error)
}

type orphanageRepository struct {
	db *gorm.DB
}

func NewOrphanageRepository(db *gorm.DB) OrphanageRepository {
	return &orphanageRepository{db: db}
}

func (r *orphanageRepository) Create(ctx context.Context, orphanage *entity.Orphanage) error {
	return r.db.WithContext(ctx).Create(orphanage).Error
}

func (r *orphanageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Orphanage, error) {
	var orphanage entity.Orphanage
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orphanage).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &orphanage, err
}

func (r *orphanageRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Orphanage, error) {
	var orphanage entity.Orphanage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&orphanage).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &orphanage, err
}

func (r *orphanageRepository) ListApproved(ctx context.Context) ([]entity.Orphanage, error) {
	var orphanages []entity.Orphanage
	err := r.db.WithContext(ctx).
		Where("approved = true").
		Order("created_at DESC").
		Find(&orphanages).Error
	if err != nil {
		return nil, err
	}
	return orphanages, nil
}

func (r *orphanageRepository) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Orphanage{}).
		Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
