package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	AccessTokenTTL time.Duration
	// DebugReturnOTP echoes the plaintext code in the RequestOTP response.
	// Development convenience only; defaults to off.
	DebugReturnOTP bool
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// SecretHasher is a slow salted one-way hash, so that brute-forcing the
// numeric code space stays expensive per guess.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(hash string, secret string) bool
}

type AccessTokenIssuer interface {
	IssueAccessToken(userID uuid.UUID) (string, time.Duration, error)
}

// OTPSender delivers a code out-of-band to a phone number.
type OTPSender interface {
	SendOTP(ctx context.Context, phone string, code string) error
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptSecretHasher struct {
	Cost int
}

func (h BcryptSecretHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptSecretHasher) Verify(hash string, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
