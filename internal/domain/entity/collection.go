package entity

import (
	"time"

	"github.com/google/uuid"

	"truefind/internal/errors"
)

// CollectionKind discriminates the two per-user product collections.
type CollectionKind string

const (
	// CollectionVerified is the list of products a user marked as verified.
	CollectionVerified CollectionKind = "verified"

	// CollectionWatchlist is the list of products a user is watching.
	CollectionWatchlist CollectionKind = "watchlist"
)

// ParseCollectionKind validates a raw kind string.
func ParseCollectionKind(raw string) (CollectionKind, error) {
	switch CollectionKind(raw) {
	case CollectionVerified:
		return CollectionVerified, nil
	case CollectionWatchlist:
		return CollectionWatchlist, nil
	default:
		return "", errors.Errorf("unknown collection kind: %s", raw)
	}
}

// String returns the string representation of the collection kind.
func (k CollectionKind) String() string {
	return string(k)
}

// AddedStatus is the fixed acknowledgement returned after a successful add.
func (k CollectionKind) AddedStatus() string {
	if k == CollectionWatchlist {
		return "Product added to watchlist"
	}

	return "Product added to verified list"
}

// CollectionEntry links one user to one product for a given collection kind.
// At most one entry exists per (user, product, kind).
type CollectionEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Kind      CollectionKind
	Product   *Product // The linked product, populated on reads.
	CreatedAt time.Time
}
