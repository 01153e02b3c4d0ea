package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/cache"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
)

const countsCacheTTL = 30 * time.Second

type RSVPService struct {
	eventsRepo models.EventsRepo
	rsvpRepo   models.RSVPRepo
}

func NewRSVPService(eventsRepo models.EventsRepo, rsvpRepo models.RSVPRepo) *RSVPService {
	return &RSVPService{
		eventsRepo: eventsRepo,
		rsvpRepo:   rsvpRepo,
	}
}

// RSVPResult tells the caller what their click did.
type RSVPResult struct {
	Outcome models.RSVPOutcome `json:"outcome"`
	RSVP    *models.RSVP       `json:"rsvp,omitempty"`
}

// SetRSVP reconciles one attendee's relationship to one event.
//
// Same-type click toggles the active row off, other-type click changes the
// type in place, no prior row inserts a new active one. A "going" request is
// gated by capacity unless the caller is already going.
//
// The capacity read and the insert are two separate store calls, so two
// concurrent "going" requests against a near-full event can both pass the
// check and overshoot the ceiling. That matches how every other transition in
// the app works (read, validate, single-row write) and is accepted here.
func (rs *RSVPService) SetRSVP(ctx context.Context, userId, eventId uuid.UUID, requestedType models.RSVPType, accessToken string) (*RSVPResult, error) {
	if userId == uuid.Nil || eventId == uuid.Nil {
		return nil, fmt.Errorf("invalid user or event ID")
	}
	if !requestedType.Valid() {
		return nil, models.ErrInvalidRSVPType
	}

	event, err := rs.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if event.Status != models.EventStatusApproved {
		return nil, models.ErrEventNotOpen
	}

	current, err := rs.rsvpRepo.GetActiveRSVP(ctx, userId, eventId, accessToken)
	if err != nil {
		return nil, err
	}

	_, going, err := rs.rsvpRepo.CountActiveRSVPs(ctx, eventId)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendees: %v", err)
	}

	outcome, err := models.ReconcileRSVP(current, requestedType, event.Capacity, going)
	if err != nil {
		return nil, err
	}

	var row *models.RSVP
	switch outcome {
	case models.RSVPOutcomeRemoved:
		row, err = rs.rsvpRepo.UpdateRSVP(ctx, current.ID, map[string]interface{}{
			"status": models.RSVPStatusCancelled,
		}, accessToken)
	case models.RSVPOutcomeChanged:
		row, err = rs.rsvpRepo.UpdateRSVP(ctx, current.ID, map[string]interface{}{
			"rsvp_type": requestedType,
		}, accessToken)
	case models.RSVPOutcomeCreated:
		now := time.Now()
		row, err = rs.rsvpRepo.InsertRSVP(ctx, &models.RSVP{
			ID:        uuid.New(),
			UserID:    userId,
			EventID:   eventId,
			Type:      requestedType,
			Status:    models.RSVPStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}, accessToken)
	}
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, countsCacheKey(eventId))

	return &RSVPResult{Outcome: outcome, RSVP: row}, nil
}

func countsCacheKey(eventId uuid.UUID) string {
	return "event_counts:" + eventId.String()
}

// GetEventCounts returns the derived aggregates for an event. Counts are
// cached briefly; capacity checks never read from this path.
func (rs *RSVPService) GetEventCounts(ctx context.Context, eventId uuid.UUID) (*models.EventCounts, error) {
	if eventId == uuid.Nil {
		return nil, fmt.Errorf("invalid event ID")
	}

	var counts models.EventCounts
	err := cache.CacheAside(ctx, countsCacheKey(eventId), &counts, countsCacheTTL, func() error {
		event, err := rs.eventsRepo.GetEventByID(ctx, eventId)
		if err != nil {
			return err
		}
		interested, going, err := rs.rsvpRepo.CountActiveRSVPs(ctx, eventId)
		if err != nil {
			return err
		}
		counts = models.NewEventCounts(eventId, interested, going, event.Capacity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &counts, nil
}

// ListEventAttendees returns the active RSVPs for an event. Only the owning
// venue or an admin may see the attendee list.
func (rs *RSVPService) ListEventAttendees(ctx context.Context, eventId, callerId uuid.UUID, isAdmin bool, accessToken string) ([]*models.RSVP, error) {
	event, err := rs.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}

	if event.VenueID != callerId && !isAdmin {
		return nil, models.ErrForbidden
	}

	return rs.rsvpRepo.ListActiveRSVPsByEvent(ctx, eventId, accessToken)
}

func (rs *RSVPService) ListUserRSVPs(ctx context.Context, userId uuid.UUID, accessToken string) ([]*models.RSVP, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	return rs.rsvpRepo.ListRSVPsByUser(ctx, userId, accessToken)
}
