// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"truefind/internal/domain/entity"
)

// AuthenticateInput carries the client-supplied identity token.
type AuthenticateInput struct {
	IDToken string `json:"idToken"`
}

// AuthenticateOutput echoes the resolved profile back to the caller.
type AuthenticateOutput struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthUsecase defines the authentication operations the delivery layer depends on.
type AuthUsecase interface {
	// Authenticate exchanges an ID token for a verified identity and upserts
	// the mirroring user profile: created with username derived from the email
	// local-part on first sight, email refreshed on every later call.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// ResolvePrincipal verifies a protected request's token and returns the
	// matching local profile. Used by the authorization middleware.
	ResolvePrincipal(ctx context.Context, idToken string) (*entity.UserProfile, error)
}
