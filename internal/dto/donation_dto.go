package dto

import (
	"encoding/json"
	"time"

	"meallink/internal/entity"
)

type DonationCreateRequest struct {
	DonorID        string          `json:"donor_id" validate:"required,uuid"`
	DonationType   string          `json:"donation_type" validate:"required,oneof=food money clothes furniture"`
	Details        json.RawMessage `json:"details" validate:"omitempty"`
	DeliveryMethod *string         `json:"delivery_method" validate:"omitempty"`
	OrphanageID    *string         `json:"orphanage_id" validate:"omitempty,uuid"`
}

type DonationDecisionRequest struct {
	Approve bool    `json:"approve"`
	Note    *string `json:"note" validate:"omitempty"`
}

type DonationResponse struct {
	ID             string          `json:"id"`
	DonorID        string          `json:"donor_id"`
	OrphanageID    *string         `json:"orphanage_id,omitempty"`
	DonationType   string          `json:"donation_type"`
	Details        json.RawMessage `json:"details,omitempty"`
	DeliveryMethod *string         `json:"delivery_method,omitempty"`
	VolunteerID    *string         `json:"assigned_volunteer_id,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func DonationResponseFromEntity(donation *entity.Donation) DonationResponse {
	response := DonationResponse{
		ID:             donation.ID.String(),
		DonorID:        donation.DonorID.String(),
		DonationType:   string(donation.Type),
		Details:        json.RawMessage(donation.Details),
		DeliveryMethod: donation.DeliveryMethod,
		Status:         string(donation.Status),
		CreatedAt:      donation.CreatedAt,
		UpdatedAt:      donation.UpdatedAt,
	}
	if donation.OrphanageID != nil {
		id := donation.OrphanageID.String()
		response.OrphanageID = &id
	}
	if donation.VolunteerID != nil {
		id := donation.VolunteerID.String()
		response.VolunteerID = &id
	}
	return response
}

func DonationResponsesFromEntities(donations []entity.Donation) []DonationResponse {
	responses := make([]DonationResponse, 0, len(donations))
	for i := range donations {
		responses = append(responses, DonationResponseFromEntity(&donations[i]))
	}
	return responses
}
