package handler

import (
	"errors"
	"net/http"

	"github.com/josedavimartini-ship-it/publimicro-sub003/api/middleware"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/dto"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type VerificationHandler struct {
	Service  *service.VerificationService
	Validate *validator.Validate
}

func NewVerificationHandler(svc *service.VerificationService, validate *validator.Validate) *VerificationHandler {
	return &VerificationHandler{Service: svc, Validate: validate}
}

func (h *VerificationHandler) Submit(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.SubmitVerificationRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	verification, err := h.Service.Submit(c.Request().Context(), userID, req.Document)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.VerificationResponseFromEntity(verification))
}

func (h *VerificationHandler) Search(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	verifications, err := h.Service.Search(c.Request().Context(), repository.VerificationFilter{
		Document: c.QueryParam("document"),
		Status:   entity.VerificationStatus(c.QueryParam("status")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.VerificationResponsesFromEntities(verifications))
}

func (h *VerificationHandler) Review(c echo.Context) error {
	reviewerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid verification id"))
	}
	var req dto.ReviewVerificationRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	if err := h.Service.Review(c.Request().Context(), id, req.Approve, reviewerID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
