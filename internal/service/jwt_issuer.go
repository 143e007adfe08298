package service

import (
	"time"

	"meallink/internal/utils"

	"github.com/google/uuid"
)

type JWTAccessIssuer struct {
	Manager *utils.TokenManager
}

func (j JWTAccessIssuer) IssueAccessToken(userID uuid.UUID) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, utils.ErrInvalidToken
	}
	return j.Manager.Issue(userID.String())
}
