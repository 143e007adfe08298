package service

import (
	"context"
	"strings"

	"meallink/internal/entity"
	"meallink/internal/repository"

	"github.com/google/uuid"
)

type OrphanageService struct {
	orphanages repository.OrphanageRepository
}

func NewOrphanageService(orphanages repository.OrphanageRepository) *OrphanageService {
	return &OrphanageService{orphanages: orphanages}
}

type CreateOrphanageInput struct {
	UserID        *uuid.UUID
	Name          string
	Address       string
	Phone         *string
	ContactPerson *string
}

// Create registers an organization profile. New profiles always start
// unapproved; only ApproveOrphanage lifts the gate.
func (s *OrphanageService) Create(ctx context.Context, input CreateOrphanageInput) (*entity.Orphanage, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Address) == "" {
		return nil, ErrInvalidInput
	}

	orphanage := &entity.Orphanage{
		UserID:        input.UserID,
		Name:          input.Name,
		Address:       input.Address,
		Phone:         input.Phone,
		ContactPerson: input.ContactPerson,
		Approved:      false,
	}
	if err := s.orphanages.Create(ctx, orphanage); err != nil {
		return nil, err
	}
	return orphanage, nil
}

func (s *OrphanageService) Get(ctx context.Context, id uuid.UUID) (*entity.Orphanage, error) {
	orphanage, err := s.orphanages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if orphanage == nil {
		return nil, ErrNotFound
	}
	return orphanage, nil
}

// ListApproved is the public listing; unapproved organizations stay hidden.
func (s *OrphanageService) ListApproved(ctx context.Context) ([]entity.Orphanage, error) {
	return s.orphanages.ListApproved(ctx)
}

func (s *OrphanageService) Approve(ctx context.Context, id uuid.UUID) (*entity.Orphanage, error) {
	approved, err := s.orphanages.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, ErrNotFound
	}
	return s.orphanages.FindByID(ctx, id)
}
