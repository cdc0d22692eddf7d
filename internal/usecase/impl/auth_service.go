// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "truefind/internal/delivery/context"
	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/domain/repository"
	"truefind/internal/domain/service"
	"truefind/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	verifier  service.IdentityVerifier
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Verifier  service.IdentityVerifier
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		verifier:  params.Verifier,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the ID token with the identity provider and upserts
// the local profile mirroring the verified identity.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	if input == nil || strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerrors.ErrMissingIDToken
	}

	identity, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Identity provider rejected token", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamAuthFailed.WithDetails(err.Error())
	}

	profile, err := srv.upsertProfile(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert user profile")
	}

	srv.log(ctx).Info("Authentication succeeded",
		slog.String("uid", profile.UID),
		slog.String("username", profile.Username))

	return &usecase.AuthenticateOutput{
		UID:      profile.UID,
		Email:    identity.Email,
		Username: profile.Username,
	}, nil
}

// upsertProfile creates the profile on first authentication and refreshes the
// stored email on every later one. Username is derived once and kept.
func (srv *authService) upsertProfile(ctx context.Context, identity *service.Identity) (*entity.UserProfile, error) {
	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByUID(ctx, identity.UID)
		if errors.Is(err, repository.ErrUserNotFound) {
			created := &entity.UserProfile{
				UID:        identity.UID,
				Email:      identity.Email,
				Username:   entity.UsernameFromEmail(identity.Email),
				ProfilePic: identity.PictureURL,
			}
			if err := userRepo.Create(ctx, created); err != nil {
				return errors.Wrap(err, "failed to create user profile")
			}
			profile = created

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user profile")
		}

		if existing.Email != identity.Email {
			if err := userRepo.UpdateEmail(ctx, identity.UID, identity.Email); err != nil {
				return errors.Wrap(err, "failed to refresh user email")
			}
			existing.Email = identity.Email
		}
		profile = existing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ResolvePrincipal verifies a protected request's token and loads the local
// profile it belongs to. Any failure maps to an unauthorized error so no
// handler logic runs for unauthenticated requests.
func (srv *authService) ResolvePrincipal(ctx context.Context, idToken string) (*entity.UserProfile, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	profile, err := srv.userRepo.FindByUID(ctx, identity.UID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("no profile for verified identity")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load principal profile")
	}

	return profile, nil
}
