package booking

import "errors"

var (
	// ErrIncompleteRequest is returned when a required booking field is missing.
	ErrIncompleteRequest = errors.New("missing required booking information")

	// ErrPaymentDeclined is returned when the authorizer declines a well-formed
	// charge. Never retried automatically.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrStoreUnavailable is returned when the booking store cannot complete a
	// write or delete. On create, no booking exists when this is returned.
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrCancellationInProgress is returned when another cancellation holds the
	// lock for the same reference.
	ErrCancellationInProgress = errors.New("cancellation already in progress")
)
