package handler

import (
	"net/http"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/dto"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type LeadHandler struct {
	Service  *service.LeadService
	Validate *validator.Validate
}

func NewLeadHandler(svc *service.LeadService, validate *validator.Validate) *LeadHandler {
	return &LeadHandler{Service: svc, Validate: validate}
}

func (h *LeadHandler) CreateContact(c echo.Context) error {
	var req dto.ContactRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	contact, err := h.Service.CreateContact(c.Request().Context(), service.CreateContactInput{
		ListingID:   parseOptionalUUID(req.ListingID),
		Kind:        entity.ContactKind(req.Kind),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		City:        req.City,
		Country:     req.Country,
		Message:     req.Message,
		PreferredAt: req.PreferredAt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ContactResponseFromEntity(contact))
}

func (h *LeadHandler) CreateProposal(c echo.Context) error {
	var req dto.ProposalRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	proposal, err := h.Service.CreateProposal(c.Request().Context(), service.CreateProposalInput{
		ListingID:     parseOptionalUUID(req.ListingID),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		Country:       req.Country,
		Amount:        req.Amount,
		Conditions:    req.Conditions,
		Justification: req.Justification,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ProposalResponseFromEntity(proposal))
}

func parseOptionalUUID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &id
}
