package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/josedavimartini-ship-it/publimicro-sub003/api/middleware"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/dto"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	Service  *service.ListingService
	Validate *validator.Validate
}

func NewListingHandler(svc *service.ListingService, validate *validator.Validate) *ListingHandler {
	return &ListingHandler{Service: svc, Validate: validate}
}

func (h *ListingHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateListingRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	listing, err := h.Service.Create(c.Request().Context(), userID, service.CreateListingInput{
		Brand:       req.Brand,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		City:        req.City,
		Country:     req.Country,
		Images:      req.Images,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ListingResponseFromEntity(listing))
}

func (h *ListingHandler) List(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	minPrice, _ := strconv.ParseFloat(c.QueryParam("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)

	listings, err := h.Service.Search(c.Request().Context(), repository.ListingFilter{
		Brand:    c.QueryParam("brand"),
		City:     c.QueryParam("city"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ListingResponsesFromEntities(listings))
}

func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid listing id"))
	}

	var viewerID *uuid.UUID
	viewerRole := entity.UserRoleUser
	if userID, ok := middleware.UserIDFromContext(c); ok {
		viewerID = &userID
		if role, ok := middleware.RoleFromContext(c); ok {
			viewerRole = entity.UserRole(role)
		}
	}

	listing, err := h.Service.Get(c.Request().Context(), id, viewerID, viewerRole)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ListingResponseFromEntity(listing))
}

func (h *ListingHandler) ListPending(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	listings, err := h.Service.ListPending(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ListingResponsesFromEntities(listings))
}

func (h *ListingHandler) Approve(c echo.Context) error {
	return h.moderate(c, h.Service.Approve)
}

func (h *ListingHandler) Reject(c echo.Context) error {
	return h.moderate(c, h.Service.Reject)
}

func (h *ListingHandler) moderate(c echo.Context, action func(ctx context.Context, id uuid.UUID) error) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid listing id"))
	}
	if err := action(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
