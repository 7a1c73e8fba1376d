// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serving surface started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
