// Package delivery defines the interface every transport entry point implements.
package delivery

import "context"

// Delivery is a transport server that can be started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
