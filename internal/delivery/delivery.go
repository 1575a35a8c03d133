// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a serving entry point of the application. Implementations block
// in Serve until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
