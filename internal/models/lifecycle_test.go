package models

import (
	"testing"
)

func pendingEvent() *Event {
	return &Event{Status: EventStatusPending}
}

func approvedEvent() *Event {
	return &Event{Status: EventStatusApproved}
}

func TestApproveOnlyFromPending(t *testing.T) {
	if err := ValidateApprove(pendingEvent()); err != nil {
		t.Errorf("expected pending event to be approvable, got %v", err)
	}

	for _, status := range []EventStatus{EventStatusApproved, EventStatusRejected, EventStatusCancelled} {
		err := ValidateApprove(&Event{Status: status})
		if err != ErrInvalidTransition {
			t.Errorf("approve from %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestRejectRequiresPendingAndReason(t *testing.T) {
	if err := ValidateReject(pendingEvent(), "incomplete info"); err != nil {
		t.Errorf("expected reject with reason to pass, got %v", err)
	}

	if err := ValidateReject(pendingEvent(), "   "); err != ErrReasonRequired {
		t.Errorf("expected ErrReasonRequired for blank reason, got %v", err)
	}

	if err := ValidateReject(approvedEvent(), "some reason"); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition rejecting an approved event, got %v", err)
	}
}

func TestRejectedEventsStayEditable(t *testing.T) {
	// Editing a rejected event is allowed but never resubmits it
	if err := ValidateEditable(&Event{Status: EventStatusRejected}); err != nil {
		t.Errorf("rejected event should be editable, got %v", err)
	}

	if err := ValidateEditable(&Event{Status: EventStatusCancelled}); err != ErrEventCancelled {
		t.Errorf("cancelled event should not be editable, got %v", err)
	}
}

func TestCapacityChangeFloor(t *testing.T) {
	three := 3
	five := 5

	if err := ValidateCapacityChange(&five, 3); err != nil {
		t.Errorf("capacity 5 with 3 going should pass, got %v", err)
	}
	if err := ValidateCapacityChange(&three, 3); err != nil {
		t.Errorf("capacity equal to going count should pass, got %v", err)
	}
	if err := ValidateCapacityChange(&three, 4); err != ErrCapacityBelowGoing {
		t.Errorf("capacity below going count should fail, got %v", err)
	}
	if err := ValidateCapacityChange(nil, 100); err != nil {
		t.Errorf("unlimited capacity should always pass, got %v", err)
	}
}

func TestCancellationRequestRules(t *testing.T) {
	if err := ValidateCancellationRequest(approvedEvent(), "venue double-booked"); err != nil {
		t.Errorf("expected request on approved event to pass, got %v", err)
	}

	if err := ValidateCancellationRequest(approvedEvent(), ""); err != ErrReasonRequired {
		t.Errorf("expected ErrReasonRequired, got %v", err)
	}

	if err := ValidateCancellationRequest(pendingEvent(), "reason"); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition for pending event, got %v", err)
	}

	// A second request while one is pending is rejected, not overwritten
	requested := approvedEvent()
	requested.CancellationRequested = true
	if err := ValidateCancellationRequest(requested, "another reason"); err != ErrCancellationPending {
		t.Errorf("expected ErrCancellationPending, got %v", err)
	}
}

func TestCancellationApprovalRequiresPendingRequest(t *testing.T) {
	requested := approvedEvent()
	requested.CancellationRequested = true
	if err := ValidateCancellationApproval(requested); err != nil {
		t.Errorf("expected approval of pending request to pass, got %v", err)
	}

	if err := ValidateCancellationApproval(approvedEvent()); err != ErrNoCancellationPending {
		t.Errorf("approve without request: expected ErrNoCancellationPending, got %v", err)
	}

	decided := approvedEvent()
	decided.CancellationRequested = true
	decided.CancellationApproved = true
	if err := ValidateCancellationApproval(decided); err != ErrNoCancellationPending {
		t.Errorf("approve an already-decided request: expected ErrNoCancellationPending, got %v", err)
	}
}

func TestCancellationRejectionClearsNothingWhenAbsent(t *testing.T) {
	requested := approvedEvent()
	requested.CancellationRequested = true
	if err := ValidateCancellationRejection(requested); err != nil {
		t.Errorf("expected rejection of pending request to pass, got %v", err)
	}

	if err := ValidateCancellationRejection(approvedEvent()); err != ErrNoCancellationPending {
		t.Errorf("expected ErrNoCancellationPending, got %v", err)
	}
}
