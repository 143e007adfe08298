package dto

import (
	"time"

	"meallink/internal/entity"
)

type AssignRoleRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required,oneof=admin donor orphanage volunteer"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	FullName  *string   `json:"full_name,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func UserResponseFromEntity(user *entity.User, roles []entity.Role) UserResponse {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return UserResponse{
		ID:        user.ID.String(),
		Phone:     user.Phone,
		FullName:  user.FullName,
		Roles:     names,
		CreatedAt: user.CreatedAt,
	}
}
