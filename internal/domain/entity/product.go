package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a client-submitted product record. Identity is the exact
// combination of all descriptive fields: two submissions differing in even one
// field produce two distinct rows.
type Product struct {
	ID                 uuid.UUID
	Name               string
	Platform           string
	Price              string
	VerificationStatus string
	ImageURL           string
	CreatedAt          time.Time
}

// SameFields reports whether two products match on every descriptive field,
// which is the get-or-create matching policy.
func (p *Product) SameFields(other *Product) bool {
	if other == nil {
		return false
	}

	return p.Name == other.Name &&
		p.Platform == other.Platform &&
		p.Price == other.Price &&
		p.VerificationStatus == other.VerificationStatus &&
		p.ImageURL == other.ImageURL
}
