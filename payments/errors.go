package payments

import (
	"errors"
	"fmt"
)

// Workflow failure kinds. Handlers match on these to pick a response shape;
// nothing in the primary path is reported as a bare string.
var (
	// ErrInvalidService is returned for services not in the catalog.
	ErrInvalidService = errors.New("invalid service selected")

	// ErrSignatureInvalid is returned when the gateway rejects a payment
	// signature. The message is deliberately generic.
	ErrSignatureInvalid = errors.New("payment verification failed")

	// ErrSpamDetected is returned when the contact form honeypot is filled.
	ErrSpamDetected = errors.New("spam detected")

	// ErrValidation is returned when a required contact field is missing.
	ErrValidation = errors.New("all fields are required")
)

// GatewayError wraps a failed gateway call from the primary path.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
