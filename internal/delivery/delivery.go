// Package delivery defines the contract of the process entry points (API server, task worker).
package delivery

import "context"

// Delivery is a long-running server started by main. Shutdown is registered on the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
