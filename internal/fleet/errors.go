// internal/fleet/errors.go
package fleet

import "errors"

// Failure kinds the transport layer maps onto HTTP statuses. Store faults
// are anything not wrapping one of these and propagate unchanged.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrVehicleNotFound = errors.New("vehicle not found")
)
