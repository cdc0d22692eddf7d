package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "truefind/internal/delivery/context"
	"truefind/internal/domain/entity"
	"truefind/internal/domain/repository"
	"truefind/internal/usecase"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager      repository.TransactionManager
	collectionRepo repository.CollectionRepository
	logger         *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CollectionRepo repository.CollectionRepository
	Logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:      params.TxManager,
		collectionRepo: params.CollectionRepo,
		logger:         params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every entry the user owns for the kind. No pagination or
// filtering; the full collection is returned on every call.
func (srv *collectionService) List(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]*entity.CollectionEntry, error) {
	entries, err := srv.collectionRepo.ListByUser(ctx, userID, kind)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s entries", kind)
	}

	return entries, nil
}

// Add finds or creates the product matching the payload exactly, then finds
// or creates the user's link to it. Both steps run in one transaction so a
// failed link never leaves an orphan product behind.
func (srv *collectionService) Add(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind, input *usecase.AddProductInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().GetOrCreate(ctx, input.ToProduct())
		if err != nil {
			return errors.Wrap(err, "failed to get or create product")
		}

		if _, err := repoFactory.CollectionRepo().GetOrCreateLink(ctx, userID, product.ID, kind); err != nil {
			return errors.Wrap(err, "failed to get or create link")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add product to collection",
			slog.String("kind", kind.String()),
			slog.Any("userID", userID),
			slog.Any("error", err))

		return errors.Wrapf(err, "failed to add product to %s", kind)
	}

	srv.log(ctx).Debug("Product added to collection",
		slog.String("kind", kind.String()),
		slog.Any("userID", userID))

	return nil
}
