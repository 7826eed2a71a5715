// Package delivery defines the contract every transport implementation
// satisfies, so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a transport serving the application to the outside world.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
