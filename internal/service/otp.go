package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"meallink/internal/entity"
	"meallink/internal/repository"
)

// OTPManager issues and consumes one-time codes bound to a phone number.
type OTPManager struct {
	challenges repository.OTPChallengeRepository
	hasher     SecretHasher
	clock      Clock
	config     OTPConfig
}

func NewOTPManager(
	challenges repository.OTPChallengeRepository,
	hasher SecretHasher,
	clock Clock,
	config OTPConfig,
) *OTPManager {
	return &OTPManager{
		challenges: challenges,
		hasher:     hasher,
		clock:      clock,
		config:     config,
	}
}

// Request generates a fresh code, persists its digest with an expiry and
// returns the plaintext for out-of-band delivery.
func (m *OTPManager) Request(ctx context.Context, phone string) (string, error) {
	code, err := m.generateCode()
	if err != nil {
		return "", err
	}

	hash, err := m.hasher.Hash(code)
	if err != nil {
		return "", err
	}

	challenge := &entity.OTPChallenge{
		Phone:     phone,
		CodeHash:  hash,
		ExpiresAt: m.clock.Now().Add(m.config.TTL),
	}
	if err := m.challenges.Create(ctx, challenge); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the candidate against the most recent unconsumed challenge
// for the phone and consumes it on success. Consumption is a conditional
// update, so two concurrent verifications cannot both succeed.
func (m *OTPManager) Verify(ctx context.Context, phone string, candidate string) error {
	challenge, err := m.challenges.FindLatestUnconsumed(ctx, phone)
	if err != nil {
		return err
	}
	if challenge == nil {
		return ErrOTPNotFound
	}
	if m.clock.Now().After(challenge.ExpiresAt) {
		return ErrOTPExpired
	}
	if !m.hasher.Verify(challenge.CodeHash, candidate) {
		return ErrOTPInvalid
	}

	consumed, err := m.challenges.Consume(ctx, challenge.ID)
	if err != nil {
		return err
	}
	if !consumed {
		// A concurrent verification won the race for this challenge.
		return ErrOTPNotFound
	}
	return nil
}

func (m *OTPManager) generateCode() (string, error) {
	length := m.config.Length
	if length == 0 {
		length = 6
	}
	bound := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}
