// Package firebase implements the identity verifier against the Firebase
// Authentication service.
package firebase

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"truefind/config"
	"truefind/internal/domain/service"
	"truefind/internal/errors"
)

// tokenVerifier is the subset of the Firebase auth client the verifier needs.
// Narrowing the dependency keeps the verifier testable without credentials.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

type identityVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// NewIdentityVerifier creates a verifier backed by the configured Firebase project.
func NewIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opts := []option.ClientOption{}
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &identityVerifier{client: client, logger: logger}, nil
}

// VerifyIDToken submits the token to Firebase and maps the verified claims to
// a domain identity. All failures are surfaced without retry.
func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		identity.PictureURL = picture
	}

	// Some token mints omit the email claim; fall back to the user record.
	if identity.Email == "" {
		record, err := v.client.GetUser(ctx, token.UID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch user record")
		}
		identity.Email = record.Email
		if identity.PictureURL == "" {
			identity.PictureURL = record.PhotoURL
		}
	}

	v.logger.Info("ID token verified",
		slog.String("uid", identity.UID),
		slog.String("email", identity.Email))

	return identity, nil
}
