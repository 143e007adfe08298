package service

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotRegistered     = errors.New("user not registered, please sign up")
	ErrAlreadyRegistered = errors.New("user already registered, please login")

	ErrOTPNotFound = errors.New("no active code for this phone")
	ErrOTPExpired  = errors.New("code expired")
	ErrOTPInvalid  = errors.New("invalid code")

	// ErrRegistrationPending signals a freshly created orphanage account:
	// the account exists but no session is issued until an admin approves.
	ErrRegistrationPending = errors.New("account created, pending admin approval")
	ErrPendingApproval     = errors.New("account pending admin approval")

	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrInvalidState   = errors.New("donation not in a state allowing this action")
	ErrAlreadyClaimed = errors.New("donation already claimed")
	ErrConflict       = errors.New("lost a concurrent update, retry")
)
