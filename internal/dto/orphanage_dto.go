package dto

import (
	"time"

	"meallink/internal/entity"
)

type OrphanageCreateRequest struct {
	UserID        *string `json:"user_id" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	Phone         *string `json:"phone" validate:"omitempty"`
	ContactPerson *string `json:"contact_person" validate:"omitempty"`
}

type OrphanageResponse struct {
	ID            string    `json:"id"`
	UserID        *string   `json:"user_id,omitempty"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         *string   `json:"phone,omitempty"`
	ContactPerson *string   `json:"contact_person,omitempty"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
}

func OrphanageResponseFromEntity(orphanage *entity.Orphanage) OrphanageResponse {
	response := OrphanageResponse{
		ID:            orphanage.ID.String(),
		Name:          orphanage.Name,
		Address:       orphanage.Address,
		Phone:         orphanage.Phone,
		ContactPerson: orphanage.ContactPerson,
		Approved:      orphanage.Approved,
		CreatedAt:     orphanage.CreatedAt,
	}
	if orphanage.UserID != nil {
		id := orphanage.UserID.String()
		response.UserID = &id
	}
	return response
}

func OrphanageResponsesFromEntities(orphanages []entity.Orphanage) []OrphanageResponse {
	responses := make([]OrphanageResponse, 0, len(orphanages))
	for i := range orphanages {
		responses = append(responses, OrphanageResponseFromEntity(&orphanages[i]))
	}
	return responses
}
