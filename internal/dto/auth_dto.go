package dto

type RequestOTPRequest struct {
	Phone   string `json:"phone" validate:"required"`
	IsLogin *bool  `json:"is_login"`
}

type RequestOTPResponse struct {
	Status   string `json:"status"`
	DebugOTP string `json:"debug_otp,omitempty"`
}

type OrphanageDetails struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type VerifyOTPRequest struct {
	Phone     string            `json:"phone" validate:"required"`
	OTP       string            `json:"otp" validate:"required"`
	FullName  string            `json:"full_name" validate:"omitempty"`
	Role      string            `json:"role" validate:"omitempty,oneof=admin donor orphanage volunteer"`
	Orphanage *OrphanageDetails `json:"orphanage_details" validate:"omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}
