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

type AuthorizationHandler struct {
	Service  *service.AuthorizationService
	Validate *validator.Validate
}

func NewAuthorizationHandler(svc *service.AuthorizationService, validate *validator.Validate) *AuthorizationHandler {
	return &AuthorizationHandler{Service: svc, Validate: validate}
}

// ValidateCode redeems a single-use authorization code for a listing. A
// missing or already-used code answers {valid:false} with 200, never an
// error, so the endpoint leaks nothing about which codes exist.
func (h *AuthorizationHandler) ValidateCode(c echo.Context) error {
	var req dto.ValidateCodeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	listingID, err := uuid.Parse(req.PropID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid propId"))
	}

	valid, err := h.Service.RedeemCode(c.Request().Context(), req.Code, listingID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ValidateCodeResponse{Valid: valid})
}

// Check reports whether the caller may act on a listing. Missing propId or
// an anonymous caller both answer {authorized:false}.
func (h *AuthorizationHandler) Check(c echo.Context) error {
	listingID, err := uuid.Parse(c.QueryParam("propId"))
	if err != nil {
		return c.JSON(http.StatusOK, dto.CheckAuthorizationResponse{Authorized: false})
	}

	var userID *uuid.UUID
	if id, ok := middleware.UserIDFromContext(c); ok {
		userID = &id
	}

	authorized, err := h.Service.Authorized(c.Request().Context(), listingID, userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CheckAuthorizationResponse{Authorized: authorized})
}

func (h *AuthorizationHandler) IssueCode(c echo.Context) error {
	var req dto.IssueCodeRequest
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

	code, err := h.Service.IssueCode(c.Request().Context(), listingID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.AuthorizationCodeResponseFromEntity(code))
}
