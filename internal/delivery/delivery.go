// Package delivery defines the serving surfaces of the process.
package delivery

import "context"

// Delivery is a long-running serving component started by the composition
// root and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
