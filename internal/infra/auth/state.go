// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"

	"padifood/internal/domain/service"
	"padifood/internal/errors"
)

// stateTokenBytes gives 256 bits of entropy per login attempt.
const stateTokenBytes = 32

// GenerateState produces a cryptographically random, url-safe state token used to
// correlate an OAuth redirect with its callback.
func GenerateState() (string, error) {
	b := make([]byte, stateTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to read random state bytes")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// stateGenerator implements the service.StateGenerator interface.
type stateGenerator struct{}

// NewStateGenerator is the constructor for stateGenerator.
func NewStateGenerator() service.StateGenerator {
	return &stateGenerator{}
}

// Generate returns a fresh url-safe random token.
func (*stateGenerator) Generate() (string, error) {
	return GenerateState()
}
