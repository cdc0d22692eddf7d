// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runtime. Serve blocks until the surface is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
