package usecase

import "context"

// CatalogUsecase exposes read-only views over the stored product catalog.
type CatalogUsecase interface {
	// ProductNames returns the names of all stored products in insertion order.
	ProductNames(ctx context.Context) ([]string, error)
}
