// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors an identity verified by the external provider.
// The provider UID is the source of truth for who owns the profile; the local
// row only caches the attributes the API echoes back.
type UserProfile struct {
	ID         uuid.UUID // Local primary key.
	UID        string    // Stable identifier assigned by the identity provider.
	Email      string    // Last email reported by the provider; refreshed on every authentication.
	Username   string    // Derived from the email local-part at creation and never changed afterwards.
	ProfilePic string    // Optional URL to the user's avatar.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UsernameFromEmail derives the default username from an email address: the
// text before the first '@'. An address without '@' is used as-is.
func UsernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}

	return email
}
