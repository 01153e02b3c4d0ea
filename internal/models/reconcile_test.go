package models

import (
	"testing"
)

func intPtr(n int) *int { return &n }

func activeRSVP(t RSVPType) *RSVP {
	return &RSVP{Type: t, Status: RSVPStatusActive}
}

func TestReconcileRejectsUnknownType(t *testing.T) {
	_, err := ReconcileRSVP(nil, RSVPType("maybe"), nil, 0)
	if err != ErrInvalidRSVPType {
		t.Fatalf("expected ErrInvalidRSVPType, got %v", err)
	}
}

func TestReconcileFirstClickCreates(t *testing.T) {
	for _, rt := range []RSVPType{RSVPTypeInterested, RSVPTypeGoing} {
		outcome, err := ReconcileRSVP(nil, rt, nil, 0)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", rt, err)
		}
		if outcome != RSVPOutcomeCreated {
			t.Errorf("%s: expected created, got %s", rt, outcome)
		}
	}
}

func TestReconcileSameTypeTogglesOff(t *testing.T) {
	outcome, err := ReconcileRSVP(activeRSVP(RSVPTypeInterested), RSVPTypeInterested, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if outcome != RSVPOutcomeRemoved {
		t.Errorf("expected removed, got %s", outcome)
	}
}

func TestReconcileDifferentTypeChanges(t *testing.T) {
	outcome, err := ReconcileRSVP(activeRSVP(RSVPTypeInterested), RSVPTypeGoing, intPtr(10), 2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if outcome != RSVPOutcomeChanged {
		t.Errorf("expected changed, got %s", outcome)
	}
}

func TestReconcileCapacityBlocksNewGoing(t *testing.T) {
	// Event full: two going, capacity two
	_, err := ReconcileRSVP(nil, RSVPTypeGoing, intPtr(2), 2)
	if err != ErrCapacityFull {
		t.Fatalf("expected ErrCapacityFull, got %v", err)
	}

	// Switching interested -> going is equally blocked
	_, err = ReconcileRSVP(activeRSVP(RSVPTypeInterested), RSVPTypeGoing, intPtr(2), 2)
	if err != ErrCapacityFull {
		t.Fatalf("interested->going at capacity: expected ErrCapacityFull, got %v", err)
	}
}

func TestReconcileCapacityNeverBlocksInterested(t *testing.T) {
	outcome, err := ReconcileRSVP(nil, RSVPTypeInterested, intPtr(2), 2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if outcome != RSVPOutcomeCreated {
		t.Errorf("expected created, got %s", outcome)
	}
}

func TestReconcileGoingToggleOffAtCapacity(t *testing.T) {
	// A user already going clicks going again while the event is full.
	// The toggle-off must win over the capacity check.
	outcome, err := ReconcileRSVP(activeRSVP(RSVPTypeGoing), RSVPTypeGoing, intPtr(2), 2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if outcome != RSVPOutcomeRemoved {
		t.Errorf("expected removed, got %s", outcome)
	}
}

func TestReconcileUnlimitedCapacity(t *testing.T) {
	outcome, err := ReconcileRSVP(nil, RSVPTypeGoing, nil, 100000)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if outcome != RSVPOutcomeCreated {
		t.Errorf("expected created, got %s", outcome)
	}
}
