// Package delivery defines the contract every transport (HTTP, workers) fulfils.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the transport stops
// or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
