package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DonationType string

const (
	DonationFood      DonationType = "food"
	DonationMoney     DonationType = "money"
	DonationClothes   DonationType = "clothes"
	DonationFurniture DonationType = "furniture"
)

func ParseDonationType(value string) (DonationType, bool) {
	switch DonationType(value) {
	case DonationFood, DonationMoney, DonationClothes, DonationFurniture:
		return DonationType(value), true
	}
	return "", false
}

type DonationStatus string

// Status only advances: pending → approved → in_transit → delivered,
// with pending → rejected as a terminal side branch.
const (
	DonationPending   DonationStatus = "pending"
	DonationApproved  DonationStatus = "approved"
	DonationRejected  DonationStatus = "rejected"
	DonationInTransit DonationStatus = "in_transit"
	DonationDelivered DonationStatus = "delivered"
)

type Donation struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DonorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Donor   *User     `gorm:"foreignKey:DonorID"`

	OrphanageID *uuid.UUID `gorm:"type:uuid;index"`
	Orphanage   *Orphanage `gorm:"foreignKey:OrphanageID"`

	Type           DonationType   `gorm:"type:varchar(32);not null"`
	Details        datatypes.JSON `gorm:"type:jsonb"`
	DeliveryMethod *string        `gorm:"type:varchar(64)"`

	VolunteerID *uuid.UUID `gorm:"type:uuid"`
	Volunteer   *User      `gorm:"foreignKey:VolunteerID"`

	Status DonationStatus `gorm:"type:varchar(32);default:'pending';not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
