package service

import (
	"context"

	"meallink/internal/entity"
	"meallink/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DonationService enforces the donation state machine:
// pending → approved|rejected, approved → in_transit, in_transit → delivered.
type DonationService struct {
	donations  repository.DonationRepository
	orphanages repository.OrphanageRepository
}

func NewDonationService(
	donations repository.DonationRepository,
	orphanages repository.OrphanageRepository,
) *DonationService {
	return &DonationService{donations: donations, orphanages: orphanages}
}

type CreateDonationInput struct {
	DonorID        uuid.UUID
	Type           entity.DonationType
	Details        datatypes.JSON
	DeliveryMethod *string
	OrphanageID    *uuid.UUID
}

// Create starts a donation in pending. The donor id on the payload must
// match the authenticated caller.
func (s *DonationService) Create(ctx context.Context, callerID uuid.UUID, input CreateDonationInput) (*entity.Donation, error) {
	if input.DonorID != callerID {
		return nil, ErrForbidden
	}

	donation := &entity.Donation{
		DonorID:        input.DonorID,
		OrphanageID:    input.OrphanageID,
		Type:           input.Type,
		Details:        input.Details,
		DeliveryMethod: input.DeliveryMethod,
		Status:         entity.DonationPending,
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, err
	}
	return donation, nil
}

func (s *DonationService) ListMine(ctx context.Context, donorID uuid.UUID) ([]entity.Donation, error) {
	return s.donations.ListByDonor(ctx, donorID)
}

func (s *DonationService) ListPending(ctx context.Context) ([]entity.Donation, error) {
	return s.donations.ListPending(ctx)
}

func (s *DonationService) ListPendingForOrphanage(ctx context.Context, orphanageID uuid.UUID) ([]entity.Donation, error) {
	return s.donations.ListPendingForOrphanage(ctx, orphanageID)
}

func (s *DonationService) ListAvailable(ctx context.Context) ([]entity.Donation, error) {
	return s.donations.ListAvailable(ctx)
}

// Decide approves or rejects a pending donation. When the donation targets
// a specific orphanage only that orphanage's owner may decide, unless the
// caller is an admin.
func (s *DonationService) Decide(ctx context.Context, callerID uuid.UUID, isAdmin bool, donationID uuid.UUID, approve bool) (*entity.Donation, error) {
	donation, err := s.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, ErrNotFound
	}

	if donation.OrphanageID != nil && !isAdmin {
		orphanage, err := s.orphanages.FindByID(ctx, *donation.OrphanageID)
		if err != nil {
			return nil, err
		}
		if orphanage == nil || orphanage.UserID == nil || *orphanage.UserID != callerID {
			return nil, ErrForbidden
		}
	}

	status := entity.DonationRejected
	if approve {
		status = entity.DonationApproved
	}
	decided, err := s.donations.Decide(ctx, donationID, status)
	if err != nil {
		return nil, err
	}
	if !decided {
		// The donation left pending between the read and the update.
		return nil, ErrInvalidState
	}
	return s.donations.FindByID(ctx, donationID)
}

// Claim assigns the calling volunteer exclusively to an approved donation.
// The read-check-write is a single conditional update in the store, so
// concurrent claims resolve to exactly one winner.
func (s *DonationService) Claim(ctx context.Context, volunteerID uuid.UUID, donationID uuid.UUID) (*entity.Donation, error) {
	claimed, err := s.donations.Claim(ctx, donationID, volunteerID)
	if err != nil {
		return nil, err
	}
	if claimed {
		return s.donations.FindByID(ctx, donationID)
	}

	donation, err := s.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	switch {
	case donation == nil:
		return nil, ErrNotFound
	case donation.VolunteerID != nil:
		return nil, ErrAlreadyClaimed
	case donation.Status != entity.DonationApproved:
		return nil, ErrInvalidState
	default:
		return nil, ErrConflict
	}
}

// MarkDelivered completes a donation the calling volunteer is transporting.
func (s *DonationService) MarkDelivered(ctx context.Context, volunteerID uuid.UUID, donationID uuid.UUID) (*entity.Donation, error) {
	delivered, err := s.donations.MarkDelivered(ctx, donationID, volunteerID)
	if err != nil {
		return nil, err
	}
	if delivered {
		return s.donations.FindByID(ctx, donationID)
	}

	donation, err := s.donations.FindByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	switch {
	case donation == nil:
		return nil, ErrNotFound
	case donation.VolunteerID == nil || *donation.VolunteerID != volunteerID:
		return nil, ErrForbidden
	default:
		return nil, ErrInvalidState
	}
}
