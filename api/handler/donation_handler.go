package handler

import (
	"errors"
	"net/http"

	"meallink/api/middleware"
	"meallink/internal/dto"
	"meallink/internal/entity"
	"meallink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type DonationHandler struct {
	Service  *service.DonationService
	Validate *validator.Validate
}

func NewDonationHandler(svc *service.DonationService, validate *validator.Validate) *DonationHandler {
	return &DonationHandler{Service: svc, Validate: validate}
}

func (h *DonationHandler) Create(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}

	var req dto.DonationCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	donorID, err := uuid.Parse(req.DonorID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid donor id"))
	}
	donationType, ok := entity.ParseDonationType(req.DonationType)
	if !ok {
		return writeError(c, http.StatusBadRequest, errors.New("invalid donation type"))
	}

	input := service.CreateDonationInput{
		DonorID:        donorID,
		Type:           donationType,
		DeliveryMethod: req.DeliveryMethod,
	}
	if len(req.Details) > 0 {
		input.Details = datatypes.JSON(req.Details)
	}
	if req.OrphanageID != nil {
		orphanageID, err := uuid.Parse(*req.OrphanageID)
		if err != nil {
			return writeError(c, http.StatusBadRequest, errors.New("invalid orphanage id"))
		}
		input.OrphanageID = &orphanageID
	}

	donation, err := h.Service.Create(c.Request().Context(), callerID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.DonationResponseFromEntity(donation))
}

func (h *DonationHandler) Mine(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	donations, err := h.Service.ListMine(c.Request().Context(), callerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponsesFromEntities(donations))
}

func (h *DonationHandler) Pending(c echo.Context) error {
	donations, err := h.Service.ListPending(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponsesFromEntities(donations))
}

func (h *DonationHandler) Available(c echo.Context) error {
	donations, err := h.Service.ListAvailable(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponsesFromEntities(donations))
}

func (h *DonationHandler) Decide(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid donation id"))
	}

	var req dto.DonationDecisionRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	isAdmin := middleware.HasRole(c, entity.RoleAdmin)
	donation, err := h.Service.Decide(c.Request().Context(), callerID, isAdmin, donationID, req.Approve)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponseFromEntity(donation))
}

func (h *DonationHandler) Claim(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid donation id"))
	}

	donation, err := h.Service.Claim(c.Request().Context(), callerID, donationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponseFromEntity(donation))
}

func (h *DonationHandler) Delivered(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid donation id"))
	}

	donation, err := h.Service.MarkDelivered(c.Request().Context(), callerID, donationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponseFromEntity(donation))
}
