package repository

import (
	"context"

	"github.com/google/uuid"

	"truefind/internal/domain/entity"
)

// CollectionRepository defines the operations for user-product collection links.
type CollectionRepository interface {
	// ListByUser retrieves all entries of one collection kind owned by the
	// given user, each with its product populated.
	ListByUser(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]*entity.CollectionEntry, error)

	// GetOrCreateLink ensures a single link row exists for the
	// (user, product, kind) triple. Re-linking an existing triple is a no-op.
	GetOrCreateLink(ctx context.Context, userID, productID uuid.UUID, kind entity.CollectionKind) (*entity.CollectionEntry, error)
}
