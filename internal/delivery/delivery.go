// Package delivery defines the contract every transport entry point of the
// application satisfies, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a transport frontend (HTTP today) that serves requests until
// its lifecycle is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
