package usecase

import (
	"context"

	"github.com/google/uuid"

	"truefind/internal/domain/entity"
)

// AddProductInput is the full product payload an Add operation requires.
// Every field is mandatory; a partial payload fails validation before any row
// is written.
type AddProductInput struct {
	Name               string `json:"name" validate:"required"`
	Platform           string `json:"platform" validate:"required"`
	Price              string `json:"price" validate:"required"`
	VerificationStatus string `json:"verification_status" validate:"required"`
	ImageURL           string `json:"image_url" validate:"required"`
}

// ToProduct maps the payload to a domain product.
func (in *AddProductInput) ToProduct() *entity.Product {
	return &entity.Product{
		Name:               in.Name,
		Platform:           in.Platform,
		Price:              in.Price,
		VerificationStatus: in.VerificationStatus,
		ImageURL:           in.ImageURL,
	}
}

// CollectionUsecase defines the per-user collection operations, parameterized
// by collection kind (verified | watchlist).
type CollectionUsecase interface {
	// List returns every entry the user owns for the kind, products populated.
	List(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]*entity.CollectionEntry, error)

	// Add finds or creates the product matching the payload exactly, then
	// finds or creates the user's link to it. Idempotent per user and payload.
	Add(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind, input *AddProductInput) error
}
