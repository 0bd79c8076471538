package handler

import (
	"errors"
	"net/http"

	"github.com/josedavimartini-ship-it/publimicro-sub003/api/middleware"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/dto"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type VisitHandler struct {
	Service  *service.VisitService
	Validate *validator.Validate
}

func NewVisitHandler(svc *service.VisitService, validate *validator.Validate) *VisitHandler {
	return &VisitHandler{Service: svc, Validate: validate}
}

func (h *VisitHandler) Schedule(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.ScheduleVisitRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid listing id"))
	}

	visit, err := h.Service.Schedule(c.Request().Context(), userID, service.ScheduleVisitInput{
		ListingID:   listingID,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.VisitResponseFromEntity(visit))
}

func (h *VisitHandler) Confirm(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid visit id"))
	}

	visit, err := h.Service.Confirm(c.Request().Context(), visitID, userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ConfirmVisitResponse{
		Success: true,
		Visit:   dto.VisitResponseFromEntity(visit),
	})
}

func (h *VisitHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	visits, err := h.Service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VisitResponsesFromEntities(visits))
}
