package utils

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := TokenManager{Secret: []byte("secret"), Issuer: "meallink", TTL: time.Hour}

	token, ttl, err := manager.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", ttl)
	}

	subject, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", subject)
	}
}

func TestTokenExpired(t *testing.T) {
	manager := TokenManager{Secret: []byte("secret"), TTL: -time.Minute}

	token, _, err := manager.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := manager.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenWrongKey(t *testing.T) {
	issuer := TokenManager{Secret: []byte("secret-a"), TTL: time.Hour}
	verifier := TokenManager{Secret: []byte("secret-b"), TTL: time.Hour}

	token, _, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	manager := TokenManager{Secret: []byte("secret"), TTL: time.Hour}
	if _, err := manager.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
