// Package response defines the wire shapes the API returns. The shapes are a
// client contract: flat objects and bare arrays, no envelope.
package response

import (
	"github.com/labstack/echo/v4"

	"truefind/internal/domain/entity"
)

// UserPayload is the profile echoed back after authentication.
type UserPayload struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthPayload is the body of a successful authentication response.
type AuthPayload struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

// ProductPayload is the product object embedded in collection entries.
type ProductPayload struct {
	Name               string `json:"name"`
	Platform           string `json:"platform"`
	Price              string `json:"price"`
	VerificationStatus string `json:"verification_status"`
	ImageURL           string `json:"image_url"`
}

// EntryPayload wraps a product inside a collection entry, mirroring the
// stored link structure.
type EntryPayload struct {
	Product ProductPayload `json:"product"`
}

// StatusPayload acknowledges a successful collection add.
type StatusPayload struct {
	Status string `json:"status"`
}

// ErrorPayload is the single error shape every failure returns.
type ErrorPayload struct {
	Error string `json:"error"`
}

// Entries maps domain collection entries to their wire shape. A nil or empty
// slice serializes as an empty array, never null.
func Entries(entries []*entity.CollectionEntry) []EntryPayload {
	payload := make([]EntryPayload, 0, len(entries))
	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		payload = append(payload, EntryPayload{
			Product: ProductPayload{
				Name:               entry.Product.Name,
				Platform:           entry.Product.Platform,
				Price:              entry.Product.Price,
				VerificationStatus: entry.Product.VerificationStatus,
				ImageURL:           entry.Product.ImageURL,
			},
		})
	}

	return payload
}

// Error writes the flat error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorPayload{Error: message})
}
