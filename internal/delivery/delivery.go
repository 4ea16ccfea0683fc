// Package delivery holds the transports that expose the application.
package delivery

import "context"

// Delivery is a long-running transport started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
