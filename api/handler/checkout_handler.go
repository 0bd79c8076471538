package handler

import (
	"net/http"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/dto"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	Service  *service.CheckoutService
	Validate *validator.Validate
}

func NewCheckoutHandler(svc *service.CheckoutService, validate *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{Service: svc, Validate: validate}
}

func (h *CheckoutHandler) Create(c echo.Context) error {
	var req dto.CheckoutRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	session, err := h.Service.CreateSession(c.Request().Context(), service.CreateCheckoutInput{
		Price:      req.Price,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CheckoutResponse{
		SessionID:   session.ID,
		RedirectURL: session.RedirectURL,
	})
}
