package impl

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"truefind/internal/domain/repository"
	"truefind/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{productRepo: params.ProductRepo}
}

// ProductNames returns the names of all stored products in insertion order.
func (srv *catalogService) ProductNames(ctx context.Context) ([]string, error) {
	names, err := srv.productRepo.ListNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product names")
	}

	return names, nil
}
