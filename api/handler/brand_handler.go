package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/brand"

	"github.com/labstack/echo/v4"
)

type BrandHandler struct {
	Catalog *brand.Catalog
}

func NewBrandHandler(catalog *brand.Catalog) *BrandHandler {
	return &BrandHandler{Catalog: catalog}
}

func (h *BrandHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.All())
}

func (h *BrandHandler) Get(c echo.Context) error {
	key := strings.ToLower(c.Param("key"))
	b, ok := h.Catalog.Get(key)
	if !ok {
		return writeError(c, http.StatusNotFound, errors.New("unknown brand"))
	}
	return c.JSON(http.StatusOK, b)
}
