// Package service defines domain service interfaces implemented by the infrastructure layer.
package service

import (
	"context"

	"padifood/internal/domain/entity"
)

// ProviderEmail is one email address disclosed by the external provider,
// together with the provider's verification flags.
type ProviderEmail struct {
	Email    string
	Verified bool
	Primary  bool
}

// Profile is the normalized identity returned by an OAuth provider after a
// successful code exchange. It contains identity facts only; resolution against
// our own user store happens in the use case layer.
type Profile struct {
	Provider       entity.ProviderType // Which provider produced this profile.
	ProviderUserID string              // The provider's stable subject identifier.
	Login          string              // The provider-side handle (GitHub login).
	Name           string              // Display name, may be empty.
	Email          string              // Primary email, may be empty when undisclosed.
	Emails         []ProviderEmail     // All disclosed addresses with verification flags.
	AvatarURL      string              // Profile picture URL, may be empty.
}

// OAuthProvider is the contract for an external authorization-code provider.
// Implementations exchange codes and fetch profiles; they make no auth decisions.
type OAuthProvider interface {
	// Provider returns the provider identifier.
	Provider() entity.ProviderType

	// AuthCodeURL returns the provider's authorization endpoint URL with the
	// given anti-forgery state token as the `state` parameter.
	AuthCodeURL(state string) string

	// Exchange swaps the callback's authorization code for provider credentials
	// and returns the normalized profile of the authenticated subject.
	Exchange(ctx context.Context, code string) (*Profile, error)
}
