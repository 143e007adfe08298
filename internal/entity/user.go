package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDonor     Role = "donor"
	RoleOrphanage Role = "orphanage"
	RoleVolunteer Role = "volunteer"
)

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleAdmin, RoleDonor, RoleOrphanage, RoleVolunteer:
		return Role(value), true
	}
	return "", false
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Phone    string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	FullName *string   `gorm:"type:varchar(255)"`

	CreatedAt time.Time
}

// UserRole is a row in the user/role join relation. A user may hold any
// number of roles; the composite unique index makes assignment idempotent.
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_roles_user_role"`
	Role   Role      `gorm:"type:varchar(32);not null;uniqueIndex:idx_user_roles_user_role"`

	CreatedAt time.Time
}

func (UserRole) TableName() string {
	return "user_roles"
}
