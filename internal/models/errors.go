package models

import "errors"

// Error classes surfaced by the services. Handlers map these onto HTTP status
// codes; anything not listed here is treated as a retryable store failure.
var (
	// validation
	ErrInvalidRSVPType = errors.New("rsvp type must be 'interested' or 'going'")
	ErrReasonRequired  = errors.New("a non-empty reason is required")

	// authorization
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("you are not allowed to perform this action")

	// business rules
	ErrCapacityFull          = errors.New("event has reached its capacity")
	ErrEventNotOpen          = errors.New("event is not open for RSVPs")
	ErrCapacityBelowGoing    = errors.New("capacity cannot be set below the current number of attendees going")
	ErrInvalidTransition     = errors.New("event status does not allow this transition")
	ErrEventCancelled        = errors.New("cancelled events cannot be modified")
	ErrCancellationPending   = errors.New("a cancellation request is already pending for this event")
	ErrNoCancellationPending = errors.New("no pending cancellation request for this event")

	// lookup
	ErrEventNotFound = errors.New("event not found")
	ErrRSVPNotFound  = errors.New("rsvp not found")
)
