package checkin

import "errors"

// Check-in domain errors
var (
	// ErrInvalidPayload means the webhook body matched none of the accepted
	// shapes, or yielded no messages. Always reported as a client error.
	ErrInvalidPayload = errors.New("no valid messages found in payload")
)
