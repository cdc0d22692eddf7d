package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/domain/repository"
	"truefind/internal/domain/service"
	mockRepo "truefind/internal/mocks/repository"
	mockSvc "truefind/internal/mocks/service"
	"truefind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	verifier  *mockSvc.MockIdentityVerifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	verifier := mockSvc.NewMockIdentityVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Verifier:  verifier,
		Logger:    logger,
	})

	return authServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		verifier:  verifier,
	}
}

func TestAuthService_Authenticate_FirstSightCreatesProfile(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	identity := &service.Identity{
		UID:        "firebase-uid-1",
		Email:      "jane@example.com",
		PictureURL: "https://example.com/jane.png",
	}

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(identity, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUID(ctx, identity.UID).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.UserProfile")).
				Run(func(ctx context.Context, profile *entity.UserProfile) {
					assert.Equal(t, "jane", profile.Username)
					assert.Equal(t, identity.Email, profile.Email)
					assert.Equal(t, identity.PictureURL, profile.ProfilePic)
					profile.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := f.service.Authenticate(ctx, &usecase.AuthenticateInput{IDToken: "valid-token"})

	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", output.UID)
	assert.Equal(t, "jane@example.com", output.Email)
	assert.Equal(t, "jane", output.Username)
}

func TestAuthService_Authenticate_ExistingProfileKeepsUsername(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	identity := &service.Identity{
		UID:   "firebase-uid-1",
		Email: "jane.new@example.com",
	}
	existing := &entity.UserProfile{
		ID:       uuid.New(),
		UID:      identity.UID,
		Email:    "jane@example.com",
		Username: "jane",
	}

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(identity, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUID(ctx, identity.UID).
				Return(existing, nil)

			mockUserRepo.EXPECT().
				UpdateEmail(ctx, identity.UID, "jane.new@example.com").
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := f.service.Authenticate(ctx, &usecase.AuthenticateInput{IDToken: "valid-token"})

	require.NoError(t, err)
	assert.Equal(t, "jane", output.Username, "username is derived once and never changed")
	assert.Equal(t, "jane.new@example.com", output.Email)
}

func TestAuthService_Authenticate_UnchangedEmailSkipsUpdate(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	identity := &service.Identity{
		UID:   "firebase-uid-1",
		Email: "jane@example.com",
	}
	existing := &entity.UserProfile{
		ID:       uuid.New(),
		UID:      identity.UID,
		Email:    "jane@example.com",
		Username: "jane",
	}

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(identity, nil)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByUID(ctx, identity.UID).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := f.service.Authenticate(ctx, &usecase.AuthenticateInput{IDToken: "valid-token"})

	require.NoError(t, err)
	assert.Equal(t, "jane", output.Username)
}

func TestAuthService_Authenticate_MissingToken(t *testing.T) {
	f := createTestAuthService(t)

	output, err := f.service.Authenticate(context.Background(), &usecase.AuthenticateInput{IDToken: "   "})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingIDToken))
}

func TestAuthService_Authenticate_NilInput(t *testing.T) {
	f := createTestAuthService(t)

	output, err := f.service.Authenticate(context.Background(), nil)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingIDToken))
}

func TestAuthService_Authenticate_UpstreamRejectsToken(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token has expired"))

	output, err := f.service.Authenticate(ctx, &usecase.AuthenticateInput{IDToken: "bad-token"})

	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrUpstreamAuthFailed.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "token has expired")
}

func TestAuthService_ResolvePrincipal_Success(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	identity := &service.Identity{UID: "firebase-uid-1", Email: "jane@example.com"}
	profile := &entity.UserProfile{
		ID:       uuid.New(),
		UID:      identity.UID,
		Email:    identity.Email,
		Username: "jane",
	}

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(identity, nil)

	f.userRepo.EXPECT().
		FindByUID(ctx, identity.UID).
		Return(profile, nil)

	got, err := f.service.ResolvePrincipal(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestAuthService_ResolvePrincipal_EmptyToken(t *testing.T) {
	f := createTestAuthService(t)

	got, err := f.service.ResolvePrincipal(context.Background(), "")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthService_ResolvePrincipal_VerificationFails(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("invalid signature"))

	got, err := f.service.ResolvePrincipal(ctx, "bad-token")

	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), appErr.ErrorCode())
}

func TestAuthService_ResolvePrincipal_NoLocalProfile(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	identity := &service.Identity{UID: "firebase-uid-2", Email: "john@example.com"}

	f.verifier.EXPECT().
		VerifyIDToken(ctx, "valid-token").
		Return(identity, nil)

	f.userRepo.EXPECT().
		FindByUID(ctx, identity.UID).
		Return(nil, repository.ErrUserNotFound)

	got, err := f.service.ResolvePrincipal(ctx, "valid-token")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
