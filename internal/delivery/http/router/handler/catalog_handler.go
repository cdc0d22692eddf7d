package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"truefind/internal/usecase"
)

// CatalogHandler serves the unauthenticated diagnostic view over the product
// catalog.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Summary returns a plain-text listing of every stored product name.
func (h *CatalogHandler) Summary(c echo.Context) error {
	names, err := h.uc.ProductNames(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	switch len(names) {
	case 0:
		return c.String(http.StatusOK, "no products stored")
	case 1:
		return c.String(http.StatusOK, "Product: "+names[0])
	default:
		return c.String(http.StatusOK, "Products: "+strings.Join(names, ", "))
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
