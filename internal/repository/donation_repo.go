package repository

import (
	"context"
	"errors"

	"meallink/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]entity.Donation, error)
	ListPending(ctx context.Context) ([]entity.Donation, error)
	ListPendingForOrphanage(ctx context.Context, orphanageID uuid.UUID) ([]entity.Donation, error)
	ListAvailable(ctx context.Context) ([]entity.Donation, error)
	// Decide moves a pending donation to approved or rejected. It reports
	// false when the donation is absent or no longer pending.
	Decide(ctx context.Context, id uuid.UUID, status entity.DonationStatus) (bool, error)
	// Claim is the compare-and-set assigning a volunteer: it succeeds only
	// while the donation is approved and unassigned, as one atomic update.
	Claim(ctx context.Context, id uuid.UUID, volunteerID uuid.UUID) (bool, error)
	// MarkDelivered completes an in_transit donation held by the volunteer.
	MarkDelivered(ctx context.Context, id uuid.UUID, volunteerID uuid.UUID) (bool, error)
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	var donation entity.Donation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donation).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &donation, err
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) ListPending(ctx context.Context) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := r.db.WithContext(ctx).
		Where("status = ?", entity.DonationPending).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) ListPendingForOrphanage(ctx context.Context, orphanageID uuid.UUID) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := r.db.WithContext(ctx).
		Where("orphanage_id = ? AND status = ?", orphanageID, entity.DonationPending).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) ListAvailable(ctx context.Context) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := r.db.WithContext(ctx).
		Where("status = ? AND volunteer_id IS NULL", entity.DonationApproved).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) Decide(ctx context.Context, id uuid.UUID, status entity.DonationStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Donation{}).
		Where("id = ? AND status = ?", id, entity.DonationPending).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *donationRepository) Claim(ctx context.Context, id uuid.UUID, volunteerID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Donation{}).
		Where("id = ? AND status = ? AND volunteer_id IS NULL", id, entity.DonationApproved).
		Updates(map[string]any{
			"status":       entity.DonationInTransit,
			"volunteer_id": volunteerID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *donationRepository) MarkDelivered(ctx context.Context, id uuid.UUID, volunteerID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Donation{}).
		Where("id = ? AND status = ? AND volunteer_id = ?", id, entity.DonationInTransit, volunteerID).
		Update("status", entity.DonationDelivered)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
