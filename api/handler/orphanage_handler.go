package handler

import (
	"errors"
	"net/http"

	"meallink/internal/dto"
	"meallink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type OrphanageHandler struct {
	Service   *service.OrphanageService
	Donations *service.DonationService
	Validate  *validator.Validate
}

func NewOrphanageHandler(svc *service.OrphanageService, donations *service.DonationService, validate *validator.Validate) *OrphanageHandler {
	return &OrphanageHandler{Service: svc, Donations: donations, Validate: validate}
}

func (h *OrphanageHandler) Create(c echo.Context) error {
	var req dto.OrphanageCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	input := service.CreateOrphanageInput{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
	}
	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return writeError(c, http.StatusBadRequest, errors.New("invalid user id"))
		}
		input.UserID = &userID
	}

	orphanage, err := h.Service.Create(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.OrphanageResponseFromEntity(orphanage))
}

func (h *OrphanageHandler) Get(c echo.Context) error {
	orphanageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid orphanage id"))
	}
	orphanage, err := h.Service.Get(c.Request().Context(), orphanageID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrphanageResponseFromEntity(orphanage))
}

func (h *OrphanageHandler) List(c echo.Context) error {
	orphanages, err := h.Service.ListApproved(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrphanageResponsesFromEntities(orphanages))
}

func (h *OrphanageHandler) Pending(c echo.Context) error {
	orphanageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid orphanage id"))
	}
	donations, err := h.Donations.ListPendingForOrphanage(c.Request().Context(), orphanageID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.DonationResponsesFromEntities(donations))
}

func (h *OrphanageHandler) Approve(c echo.Context) error {
	orphanageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid orphanage id"))
	}
	orphanage, err := h.Service.Approve(c.Request().Context(), orphanageID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.OrphanageResponseFromEntity(orphanage))
}
