package service

import "meallink/internal/entity"

type RequestOTPInput struct {
	Phone   string
	IsLogin bool
}

type RequestOTPResult struct {
	// DebugCode carries the plaintext code only when DebugReturnOTP is on.
	DebugCode string
}

type VerifyOTPInput struct {
	Phone    string
	Code     string
	FullName string
	Role     entity.Role
	// Orphanage onboarding details; both must be present to create the
	// organization profile during registration.
	OrgName    string
	OrgAddress string
}

type VerifyOTPResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}
