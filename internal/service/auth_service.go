package service

import (
	"context"
	"slices"
	"strings"

	"meallink/internal/entity"
	"meallink/internal/repository"
)

// AuthService orchestrates the request-OTP and verify-OTP flow, including
// first-time registration, role assignment and the orphanage approval gate.
type AuthService struct {
	users      repository.UserRepository
	orphanages repository.OrphanageRepository

	otp    *OTPManager
	sender OTPSender
	tokens AccessTokenIssuer
	config AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	orphanages repository.OrphanageRepository,
	otp *OTPManager,
	sender OTPSender,
	tokens AccessTokenIssuer,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:      users,
		orphanages: orphanages,
		otp:        otp,
		sender:     sender,
		tokens:     tokens,
		config:     config,
	}
}

func (s *AuthService) RequestOTP(ctx context.Context, input RequestOTPInput) (*RequestOTPResult, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if input.IsLogin && user == nil {
		return nil, ErrNotRegistered
	}
	if !input.IsLogin && user != nil {
		return nil, ErrAlreadyRegistered
	}

	code, err := s.otp.Request(ctx, phone)
	if err != nil {
		return nil, err
	}
	if s.sender != nil {
		if err := s.sender.SendOTP(ctx, phone, code); err != nil {
			return nil, err
		}
	}

	result := &RequestOTPResult{}
	if s.config.DebugReturnOTP {
		result.DebugCode = code
	}
	return result, nil
}

// VerifyOTP consumes the challenge and resolves one of three terminal
// outcomes: a session token, a pending-approval stop for orphanage
// accounts, or a verification failure.
func (s *AuthService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*VerifyOTPResult, error) {
	phone := strings.TrimSpace(input.Phone)
	if phone == "" || strings.TrimSpace(input.Code) == "" {
		return nil, ErrInvalidInput
	}

	if err := s.otp.Verify(ctx, phone, input.Code); err != nil {
		return nil, err
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.register(ctx, phone, input)
		if err != nil {
			return nil, err
		}
	}

	roles, err := s.users.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Returning orphanage owners stay locked out until an admin approves
	// their organization.
	if slices.Contains(roles, entity.RoleOrphanage) {
		orphanage, err := s.orphanages.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if orphanage != nil && !orphanage.Approved {
			return nil, ErrPendingApproval
		}
	}

	token, ttl, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &VerifyOTPResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

func (s *AuthService) register(ctx context.Context, phone string, input VerifyOTPInput) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		// Registration must be paired with a name.
		return nil, ErrNotRegistered
	}

	user := &entity.User{Phone: phone, FullName: &fullName}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entity.RoleDonor
	}
	if err := s.users.AssignRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	if role == entity.RoleOrphanage && input.OrgName != "" && input.OrgAddress != "" {
		orphanage := &entity.Orphanage{
			UserID:        &user.ID,
			Name:          input.OrgName,
			Address:       input.OrgAddress,
			Phone:         &user.Phone,
			ContactPerson: user.FullName,
			Approved:      false,
		}
		if err := s.orphanages.Create(ctx, orphanage); err != nil {
			return nil, err
		}
		// No session for a brand-new unapproved orphanage account.
		return nil, ErrRegistrationPending
	}

	return user, nil
}
