// Package service defines the interfaces for external collaborators the
// domain depends on.
package service

import "context"

// Identity is the verified result the identity provider returns for a token.
type Identity struct {
	UID        string // Stable provider-assigned user identifier.
	Email      string // Email associated with the identity.
	PictureURL string // Optional avatar URL reported by the provider.
}

// IdentityVerifier validates a client-supplied ID token with the external
// identity provider. The provider is trusted completely; implementations do no
// cryptographic verification of their own.
type IdentityVerifier interface {
	// VerifyIDToken exchanges an opaque ID token for a verified identity.
	// Any provider failure (invalid or expired token, network error, malformed
	// response) is returned as-is, without retry.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
