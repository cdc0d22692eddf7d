package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"truefind/internal/delivery/http/middleware"
	"truefind/internal/delivery/http/response"
	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/usecase"
)

// CollectionHandler serves both per-user collections; the kind is fixed per
// registered route.
type CollectionHandler struct {
	uc     usecase.CollectionUsecase
	logger *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler, injected by Fx.
func NewCollectionHandler(uc usecase.CollectionUsecase, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every entry the authenticated user owns for the kind, as a
// bare array of product wrappers.
func (h *CollectionHandler) List(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := middleware.Principal(c)
		if principal == nil {
			return domainerrors.ErrUnauthorized
		}

		entries, err := h.uc.List(c.Request().Context(), principal.ID, kind)
		if err != nil {
			return errors.WithStack(err)
		}

		return c.JSON(http.StatusOK, response.Entries(entries))
	}
}

// Add stores the submitted product in the user's collection. The payload must
// carry every product field; adds are idempotent per user and payload.
func (h *CollectionHandler) Add(kind entity.CollectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := middleware.Principal(c)
		if principal == nil {
			return domainerrors.ErrUnauthorized
		}

		var input *usecase.AddProductInput
		if err := c.Bind(&input); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Invalid product payload")
		}
		if err := c.Validate(input); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		if err := h.uc.Add(c.Request().Context(), principal.ID, kind, input); err != nil {
			return errors.WithStack(err)
		}

		return c.JSON(http.StatusOK, response.StatusPayload{Status: kind.AddedStatus()})
	}
}
