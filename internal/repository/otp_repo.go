package repository

import (
	"context"
	"errors"

	"meallink/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OTPChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.OTPChallenge) error
	FindLatestUnconsumed(ctx context.Context, phone string) (*entity.OTPChallenge, error)
	// Consume marks the challenge used. It reports false when the
	// challenge was already consumed by a concurrent verification.
	Consume(ctx context.Context, id uuid.UUID) (bool, error)
}

type otpChallengeRepository struct {
	db *gorm.DB
}

func NewOTPChallengeRepository(db *gorm.DB) OTPChallengeRepository {
	return &otpChallengeRepository{db: db}
}

func (r *otpChallengeRepository) Create(ctx context.Context, challenge *entity.OTPChallenge) error {
	return r.db.WithContext(ctx).Create(challenge).Error
}

func (r *otpChallengeRepository) FindLatestUnconsumed(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	var challenge entity.OTPChallenge
	err := r.db.WithContext(ctx).
		Where("phone = ? AND used = false", phone).
		Order("created_at DESC").
		First(&challenge).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challenge, err
}

func (r *otpChallengeRepository) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.OTPChallenge{}).
		Where("id = ? AND used = false", id).
		Update("used", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
