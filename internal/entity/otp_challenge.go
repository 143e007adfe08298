package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTPChallenge is one issued one-time code. Only the digest is stored;
// a consumed challenge is never reused and never deleted.
type OTPChallenge struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Phone    string    `gorm:"type:varchar(32);not null;index"`
	CodeHash string    `gorm:"type:text;not null"`

	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"default:false;not null"`

	CreatedAt time.Time
}

func (OTPChallenge) TableName() string {
	return "otp_challenges"
}
