package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates stateless HS256 bearer tokens. There
// is no revocation list: role changes or account suspension only take
// effect once the token expires.
type TokenManager struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

type AccessClaims struct {
	jwt.RegisteredClaims
}

func (m TokenManager) Issue(subject string) (string, time.Duration, error) {
	ttl := m.TTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.Secret)
	if err != nil {
		return "", 0, err
	}
	return signed, ttl, nil
}

// Parse returns the subject claim, or ErrInvalidToken on any failure:
// bad signature, malformed token or past expiry.
func (m TokenManager) Parse(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.Secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
