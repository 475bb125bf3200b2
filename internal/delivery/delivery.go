// Package delivery holds the transports that expose the dispatcher to the outside world.
package delivery

import "context"

// Delivery is a long running server started once the fx app is up.
type Delivery interface {
	Serve(ctx context.Context) error
}
