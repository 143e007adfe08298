package handler

import (
	"net/http"

	"meallink/internal/dto"
	"meallink/internal/entity"
	"meallink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{Service: svc, Validate: validate}
}

func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req dto.RequestOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	// Login is the default intent when the field is absent.
	isLogin := true
	if req.IsLogin != nil {
		isLogin = *req.IsLogin
	}

	result, err := h.Service.RequestOTP(c.Request().Context(), service.RequestOTPInput{
		Phone:   req.Phone,
		IsLogin: isLogin,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.RequestOTPResponse{
		Status:   "ok",
		DebugOTP: result.DebugCode,
	})
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req dto.VerifyOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	input := service.VerifyOTPInput{
		Phone:    req.Phone,
		Code:     req.OTP,
		FullName: req.FullName,
	}
	if req.Role != "" {
		role, ok := entity.ParseRole(req.Role)
		if !ok {
			return writeError(c, http.StatusBadRequest, service.ErrInvalidInput)
		}
		input.Role = role
	}
	if req.Orphanage != nil {
		input.OrgName = req.Orphanage.Name
		input.OrgAddress = req.Orphanage.Address
	}

	result, err := h.Service.VerifyOTP(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
	})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
