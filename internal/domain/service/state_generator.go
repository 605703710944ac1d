// Package service defines domain service interfaces implemented by the infrastructure layer.
package service

// StateGenerator produces the unguessable single-use tokens that correlate an
// OAuth redirect with its callback. Abstracted so use cases can be tested with
// deterministic tokens.
type StateGenerator interface {
	// Generate returns a fresh url-safe random token.
	Generate() (string, error)
}
