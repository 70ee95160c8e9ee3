// Package delivery defines the transport-agnostic entry point contract.
package delivery

import "context"

// Delivery is a serving surface of the application, started by main and
// stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
