// Package delivery holds the transports that expose the storefront usecases.
package delivery

import "context"

// Delivery is a long-running transport started by the process entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
