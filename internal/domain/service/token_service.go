// Package service defines domain service interfaces implemented by the infrastructure layer.
package service

import (
	"padifood/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the identity carried by an issued access token.
type Claims struct {
	UserID uuid.UUID   // "sub" claim: internal user ID.
	Email  string      // "email" claim.
	Role   entity.Role // "role" claim.
}

// TokenService mints and verifies the signed, time-limited bearer tokens used by
// stateless API clients. Validity is solely a function of signature and expiry;
// there is no server-side revocation.
type TokenService interface {
	// Sign mints an access token for the given user. It fails when no signing
	// secret is configured or when the user lacks a resolvable ID.
	Sign(user *entity.User) (string, error)

	// Verify checks a token's signature and expiry and returns its claims.
	// Every failure mode (malformed, bad signature, expired) is an error;
	// callers at the HTTP boundary convert it to "no identity".
	Verify(tokenString string) (*Claims, error)
}
