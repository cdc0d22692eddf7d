// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"truefind/internal/delivery/http/response"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/usecase"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// GoogleSignIn exchanges a client-supplied ID token for a verified identity
// and upserts the mirroring user profile.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var input *usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingIDToken
	}

	output, err := h.uc.Authenticate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.AuthPayload{
		Message: "Successfully authenticated",
		User: response.UserPayload{
			UID:      output.UID,
			Email:    output.Email,
			Username: output.Username,
		},
	})
}
