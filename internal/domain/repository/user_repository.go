// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"truefind/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user profile not found")

// UserRepository defines the standard operations for user profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUID retrieves a single profile by the identity provider's UID.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create persists a new user profile.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateEmail refreshes the stored email for the given provider UID.
	UpdateEmail(ctx context.Context, uid string, email string) error
}
