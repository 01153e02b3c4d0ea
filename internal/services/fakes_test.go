package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
)

// In-memory repos backing the service tests. They mirror the store's observable
// behaviour: single-row conditional updates, array results, not-found sentinels.

type fakeEventsRepo struct {
	events map[uuid.UUID]*models.Event
}

func newFakeEventsRepo(events ...*models.Event) *fakeEventsRepo {
	repo := &fakeEventsRepo{events: make(map[uuid.UUID]*models.Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, event *models.Event, accessToken string) (*models.Event, error) {
	stored := *event
	f.events[event.ID] = &stored
	result := stored
	return &result, nil
}

func (f *fakeEventsRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	result := *event
	return &result, nil
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context, filters map[string]string, offset, limit int) ([]*models.Event, int, error) {
	var matched []*models.Event
	for _, event := range f.events {
		if eventMatches(event, filters) {
			result := *event
			matched = append(matched, &result)
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func eventMatches(event *models.Event, filters map[string]string) bool {
	for column, value := range filters {
		switch column {
		case "status":
			if string(event.Status) != value {
				return false
			}
		case "category":
			if event.Category != value {
				return false
			}
		case "cancellation_requested":
			if fmt.Sprintf("%t", event.CancellationRequested) != value {
				return false
			}
		case "cancellation_approved_by_admin":
			if fmt.Sprintf("%t", event.CancellationApproved) != value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (f *fakeEventsRepo) ListEventsByVenue(ctx context.Context, venueId uuid.UUID, offset, limit int, accessToken string) ([]*models.Event, int, error) {
	var matched []*models.Event
	for _, event := range f.events {
		if event.VenueID == venueId {
			result := *event
			matched = append(matched, &result)
		}
	}
	return matched, len(matched), nil
}

func (f *fakeEventsRepo) UpdateEventFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}

	for key, value := range fields {
		switch key {
		case "status":
			event.Status = value.(models.EventStatus)
		case "rejection_reason":
			if value == nil {
				event.RejectionReason = ""
			} else {
				event.RejectionReason = value.(string)
			}
		case "cancellation_requested":
			event.CancellationRequested = value.(bool)
		case "cancellation_reason":
			if value == nil {
				event.CancellationReason = ""
			} else {
				event.CancellationReason = value.(string)
			}
		case "cancellation_requested_at":
			if value == nil {
				event.CancellationRequestedAt = nil
			} else {
				at := value.(time.Time)
				event.CancellationRequestedAt = &at
			}
		case "cancellation_approved_by_admin":
			event.CancellationApproved = value.(bool)
		case "cancelled_at":
			at := value.(time.Time)
			event.CancelledAt = &at
		case "title":
			event.Title = value.(string)
		case "description":
			event.Description = value.(string)
		case "category":
			event.Category = value.(string)
		case "date":
			event.Date = value.(string)
		case "time":
			event.Time = value.(string)
		case "location":
			event.Location = value.(string)
		case "price":
			event.Price = value.(float64)
		case "image_url":
			event.ImageURL = value.(string)
		case "contact_info":
			event.ContactInfo = value.(string)
		case "capacity":
			switch v := value.(type) {
			case nil:
				event.Capacity = nil
			case float64:
				capacity := int(v)
				event.Capacity = &capacity
			case int:
				capacity := v
				event.Capacity = &capacity
			}
		default:
			return nil, fmt.Errorf("unexpected column %q", key)
		}
	}
	event.UpdatedAt = time.Now()

	result := *event
	return &result, nil
}

type fakeRSVPRepo struct {
	rows []*models.RSVP
}

func (f *fakeRSVPRepo) GetActiveRSVP(ctx context.Context, userId, eventId uuid.UUID, accessToken string) (*models.RSVP, error) {
	for _, row := range f.rows {
		if row.UserID == userId && row.EventID == eventId && row.Status == models.RSVPStatusActive {
			result := *row
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeRSVPRepo) CountActiveRSVPs(ctx context.Context, eventId uuid.UUID) (int, int, error) {
	var interested, going int
	for _, row := range f.rows {
		if row.EventID != eventId || row.Status != models.RSVPStatusActive {
			continue
		}
		switch row.Type {
		case models.RSVPTypeInterested:
			interested++
		case models.RSVPTypeGoing:
			going++
		}
	}
	return interested, going, nil
}

func (f *fakeRSVPRepo) InsertRSVP(ctx context.Context, rsvp *models.RSVP, accessToken string) (*models.RSVP, error) {
	stored := *rsvp
	f.rows = append(f.rows, &stored)
	result := stored
	return &result, nil
}

func (f *fakeRSVPRepo) UpdateRSVP(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*models.RSVP, error) {
	for _, row := range f.rows {
		if row.ID != id {
			continue
		}
		for key, value := range fields {
			switch key {
			case "status":
				row.Status = value.(models.RSVPStatus)
			case "rsvp_type":
				row.Type = value.(models.RSVPType)
			default:
				return nil, fmt.Errorf("unexpected column %q", key)
			}
		}
		row.UpdatedAt = time.Now()
		result := *row
		return &result, nil
	}
	return nil, models.ErrRSVPNotFound
}

func (f *fakeRSVPRepo) ListActiveRSVPsByEvent(ctx context.Context, eventId uuid.UUID, accessToken string) ([]*models.RSVP, error) {
	var matched []*models.RSVP
	for _, row := range f.rows {
		if row.EventID == eventId && row.Status == models.RSVPStatusActive {
			result := *row
			matched = append(matched, &result)
		}
	}
	return matched, nil
}

func (f *fakeRSVPRepo) ListRSVPsByUser(ctx context.Context, userId uuid.UUID, accessToken string) ([]*models.RSVP, error) {
	var matched []*models.RSVP
	for _, row := range f.rows {
		if row.UserID == userId && row.Status == models.RSVPStatusActive {
			result := *row
			matched = append(matched, &result)
		}
	}
	return matched, nil
}
