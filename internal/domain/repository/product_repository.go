package repository

import (
	"context"
	"errors"

	"truefind/internal/domain/entity"
)

// ErrProductNotFound is returned when no product row matches the given fields.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// GetOrCreate finds a product matching every descriptive field of the
	// given entity and returns it; if none exists, it inserts the entity.
	// The insert is conflict tolerant: a concurrent identical insert resolves
	// to the already-persisted row instead of failing.
	GetOrCreate(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// ListNames returns the names of all stored products in insertion order.
	ListNames(ctx context.Context) ([]string, error)
}
