package models

import "strings"

// Lifecycle transition rules for events.
//
// pending -> approved | rejected (admin)
// approved -> cancelled (venue requests, admin approves)
// rejected and cancelled are terminal. Editing a rejected event keeps it
// rejected; there is no resubmission path.

// ValidateApprove checks that the event can move pending -> approved.
func ValidateApprove(e *Event) error {
	if e.Status != EventStatusPending {
		return ErrInvalidTransition
	}
	return nil
}

// ValidateReject checks that the event can move pending -> rejected.
// The reason is enforced here as well, not only in the UI.
func ValidateReject(e *Event, reason string) error {
	if e.Status != EventStatusPending {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return nil
}

// ValidateEditable checks whether the venue may overwrite content fields.
// Every status except cancelled is editable, including rejected.
func ValidateEditable(e *Event) error {
	if e.Status == EventStatusCancelled {
		return ErrEventCancelled
	}
	return nil
}

// ValidateCapacityChange enforces the one edit-time invariant: a capacity
// ceiling may never drop below the current count of active "going" RSVPs.
// A nil newCapacity means unlimited and is always allowed.
func ValidateCapacityChange(newCapacity *int, goingCount int) error {
	if newCapacity == nil {
		return nil
	}
	if *newCapacity < goingCount {
		return ErrCapacityBelowGoing
	}
	return nil
}

// ValidateCancellationRequest checks that the venue may ask for cancellation.
// Only approved events qualify, and a second request while one is pending is
// rejected rather than silently overwriting the first.
func ValidateCancellationRequest(e *Event, reason string) error {
	if e.Status != EventStatusApproved {
		return ErrInvalidTransition
	}
	if e.CancellationRequested {
		return ErrCancellationPending
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return nil
}

// ValidateCancellationApproval checks the admin-side approve: there must be a
// pending request that has not been decided yet.
func ValidateCancellationApproval(e *Event) error {
	if e.Status != EventStatusApproved {
		return ErrInvalidTransition
	}
	if !e.CancellationRequested || e.CancellationApproved {
		return ErrNoCancellationPending
	}
	return nil
}

// ValidateCancellationRejection checks the admin-side reject, which clears the
// request and leaves the event approved and fully editable.
func ValidateCancellationRejection(e *Event) error {
	if !e.CancellationRequested {
		return ErrNoCancellationPending
	}
	if e.Status != EventStatusApproved {
		return ErrInvalidTransition
	}
	return nil
}
