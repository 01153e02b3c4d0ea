package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
)

func capPtr(n int) *int { return &n }

func approvedEvent(capacity *int) *models.Event {
	return &models.Event{
		ID:       uuid.New(),
		VenueID:  uuid.New(),
		Title:    "Jazz Night",
		Status:   models.EventStatusApproved,
		Capacity: capacity,
	}
}

func TestSetRSVPCreatesChangesAndRemoves(t *testing.T) {
	ctx := context.Background()
	event := approvedEvent(nil)
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(newFakeEventsRepo(event), rsvpRepo)
	user := uuid.New()

	// First click creates an active row
	result, err := svc.SetRSVP(ctx, user, event.ID, models.RSVPTypeInterested, "token")
	if err != nil {
		t.Fatalf("first click: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeCreated {
		t.Fatalf("expected created, got %s", result.Outcome)
	}
	if result.RSVP == nil || result.RSVP.Type != models.RSVPTypeInterested {
		t.Fatalf("expected interested row back, got %+v", result.RSVP)
	}

	// Other type updates the same row in place
	result, err = svc.SetRSVP(ctx, user, event.ID, models.RSVPTypeGoing, "token")
	if err != nil {
		t.Fatalf("type switch: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeChanged {
		t.Fatalf("expected changed, got %s", result.Outcome)
	}
	if len(rsvpRepo.rows) != 1 {
		t.Fatalf("expected one row total, got %d", len(rsvpRepo.rows))
	}
	if rsvpRepo.rows[0].Type != models.RSVPTypeGoing {
		t.Fatalf("expected stored row switched to going, got %s", rsvpRepo.rows[0].Type)
	}

	// Same type toggles off
	result, err = svc.SetRSVP(ctx, user, event.ID, models.RSVPTypeGoing, "token")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeRemoved {
		t.Fatalf("expected removed, got %s", result.Outcome)
	}
	if rsvpRepo.rows[0].Status != models.RSVPStatusCancelled {
		t.Fatalf("expected row cancelled, got %s", rsvpRepo.rows[0].Status)
	}

	// Clicking again after removal starts a fresh row
	result, err = svc.SetRSVP(ctx, user, event.ID, models.RSVPTypeGoing, "token")
	if err != nil {
		t.Fatalf("re-rsvp: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeCreated {
		t.Fatalf("expected created after removal, got %s", result.Outcome)
	}
	if len(rsvpRepo.rows) != 2 {
		t.Fatalf("expected two rows total, got %d", len(rsvpRepo.rows))
	}
}

func TestSetRSVPCapacityFillsAndFrees(t *testing.T) {
	ctx := context.Background()
	event := approvedEvent(capPtr(2))
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(newFakeEventsRepo(event), rsvpRepo)

	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()

	for _, user := range []uuid.UUID{alice, bob} {
		if _, err := svc.SetRSVP(ctx, user, event.ID, models.RSVPTypeGoing, "token"); err != nil {
			t.Fatalf("going under capacity: %v", err)
		}
	}

	// Third going request hits the ceiling
	_, err := svc.SetRSVP(ctx, carol, event.ID, models.RSVPTypeGoing, "token")
	if !errors.Is(err, models.ErrCapacityFull) {
		t.Fatalf("expected ErrCapacityFull, got %v", err)
	}

	// The full event still takes interest
	result, err := svc.SetRSVP(ctx, carol, event.ID, models.RSVPTypeInterested, "token")
	if err != nil {
		t.Fatalf("interested at capacity: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeCreated {
		t.Fatalf("expected created, got %s", result.Outcome)
	}

	// Someone already going may toggle off despite the full event
	result, err = svc.SetRSVP(ctx, alice, event.ID, models.RSVPTypeGoing, "token")
	if err != nil {
		t.Fatalf("toggle off at capacity: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeRemoved {
		t.Fatalf("expected removed, got %s", result.Outcome)
	}

	// The freed slot is immediately usable
	result, err = svc.SetRSVP(ctx, carol, event.ID, models.RSVPTypeGoing, "token")
	if err != nil {
		t.Fatalf("going after slot freed: %v", err)
	}
	if result.Outcome != models.RSVPOutcomeChanged {
		t.Fatalf("expected carol's interested row changed to going, got %s", result.Outcome)
	}
}

func TestSetRSVPRequiresApprovedEvent(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()

	for _, status := range []models.EventStatus{models.EventStatusPending, models.EventStatusRejected, models.EventStatusCancelled} {
		event := approvedEvent(nil)
		event.Status = status
		svc := NewRSVPService(newFakeEventsRepo(event), &fakeRSVPRepo{})

		_, err := svc.SetRSVP(ctx, user, event.ID, models.RSVPTypeGoing, "token")
		if !errors.Is(err, models.ErrEventNotOpen) {
			t.Errorf("status %s: expected ErrEventNotOpen, got %v", status, err)
		}
	}
}

func TestSetRSVPRejectsUnknownType(t *testing.T) {
	event := approvedEvent(nil)
	svc := NewRSVPService(newFakeEventsRepo(event), &fakeRSVPRepo{})

	_, err := svc.SetRSVP(context.Background(), uuid.New(), event.ID, models.RSVPType("maybe"), "token")
	if !errors.Is(err, models.ErrInvalidRSVPType) {
		t.Fatalf("expected ErrInvalidRSVPType, got %v", err)
	}
}

func TestSetRSVPUnknownEvent(t *testing.T) {
	svc := NewRSVPService(newFakeEventsRepo(), &fakeRSVPRepo{})

	_, err := svc.SetRSVP(context.Background(), uuid.New(), uuid.New(), models.RSVPTypeGoing, "token")
	if !errors.Is(err, models.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGetEventCounts(t *testing.T) {
	ctx := context.Background()
	event := approvedEvent(capPtr(4))
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(newFakeEventsRepo(event), rsvpRepo)

	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, user := range users {
		rsvpType := models.RSVPTypeGoing
		if i == 2 {
			rsvpType = models.RSVPTypeInterested
		}
		if _, err := svc.SetRSVP(ctx, user, event.ID, rsvpType, "token"); err != nil {
			t.Fatalf("seed rsvp: %v", err)
		}
	}

	counts, err := svc.GetEventCounts(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEventCounts: %v", err)
	}
	if counts.GoingCount != 2 || counts.InterestedCount != 1 {
		t.Fatalf("expected 2 going / 1 interested, got %d / %d", counts.GoingCount, counts.InterestedCount)
	}
	if counts.CapacityUtilization != 0.5 {
		t.Fatalf("expected utilization 0.5, got %f", counts.CapacityUtilization)
	}
}

func TestListEventAttendeesOwnership(t *testing.T) {
	ctx := context.Background()
	event := approvedEvent(nil)
	rsvpRepo := &fakeRSVPRepo{}
	svc := NewRSVPService(newFakeEventsRepo(event), rsvpRepo)

	if _, err := svc.SetRSVP(ctx, uuid.New(), event.ID, models.RSVPTypeGoing, "token"); err != nil {
		t.Fatalf("seed rsvp: %v", err)
	}

	// A random caller is rejected
	_, err := svc.ListEventAttendees(ctx, event.ID, uuid.New(), false, "token")
	if !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// The owning venue sees the list
	rows, err := svc.ListEventAttendees(ctx, event.ID, event.VenueID, false, "token")
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 attendee, got %d", len(rows))
	}

	// So does an admin
	if _, err := svc.ListEventAttendees(ctx, event.ID, uuid.New(), true, "token"); err != nil {
		t.Fatalf("admin list: %v", err)
	}
}
