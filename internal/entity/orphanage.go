package entity

import (
	"time"

	"github.com/google/uuid"
)

type Orphanage struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID *uuid.UUID `gorm:"type:uuid;index"`
	User   *User      `gorm:"constraint:OnDelete:SET NULL"`

	Name          string  `gorm:"type:varchar(255);not null"`
	Address       string  `gorm:"type:varchar(512);not null"`
	Phone         *string `gorm:"type:varchar(32)"`
	ContactPerson *string `gorm:"type:varchar(255)"`

	// Approved gates both session issuance for the owning account and
	// visibility in public listings.
	Approved bool `gorm:"default:false;not null"`

	CreatedAt time.Time
}
