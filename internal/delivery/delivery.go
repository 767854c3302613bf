// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a server that handles external traffic. Implementations are
// collected in the "deliveries" group and started together.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
