package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	ProfileTable = "profiles"
	EventsTable  = "events"
	RSVPTable    = "rsvps"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event, accessToken string) (*Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context, filters map[string]string, offset, limit int) ([]*Event, int, error)
	ListEventsByVenue(ctx context.Context, venueId uuid.UUID, offset, limit int, accessToken string) ([]*Event, int, error)
	UpdateEventFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*Event, error)
}

func (su *SupabaseRepo) CreateEvent(ctx context.Context, event *Event, accessToken string) (*Event, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	eventData := map[string]interface{}{
		"id":           event.ID,
		"venue_id":     event.VenueID,
		"title":        event.Title,
		"description":  event.Description,
		"category":     event.Category,
		"date":         event.Date,
		"time":         event.Time,
		"location":     event.Location,
		"price":        event.Price,
		"image_url":    event.ImageURL,
		"contact_info": event.ContactInfo,
		"tags":         event.Tags,
		"capacity":     event.Capacity,
		"status":       event.Status,
		"created_at":   event.CreatedAt,
		"updated_at":   event.UpdatedAt,
	}

	raw, count, err := client.
		From(EventsTable).
		Insert(eventData, false, "", "representation", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %v", err)
	}

	var created []Event
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created event: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no event data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	raw, status, err := su.supabaseClient.From(EventsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("postgrest error: status=%d body=%s err=%v", status, string(raw), err)
		}
		return nil, fmt.Errorf("failed to get event by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event rows: %v", err)
	}

	if len(events) == 0 {
		return nil, ErrEventNotFound
	}

	return &events[0], nil
}

func (su *SupabaseRepo) ListEvents(ctx context.Context, filters map[string]string, offset, limit int) ([]*Event, int, error) {
	query := su.supabaseClient.From(EventsTable).Select("*", "exact", false)
	for column, value := range filters {
		query = query.Eq(column, value)
	}

	raw, count, err := query.
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %v", err)
	}

	var events []*Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal events: %v", err)
	}

	return events, int(count), nil
}

func (su *SupabaseRepo) ListEventsByVenue(ctx context.Context, venueId uuid.UUID, offset, limit int, accessToken string) ([]*Event, int, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	raw, count, err := client.From(EventsTable).
		Select("*", "exact", false).
		Eq("venue_id", venueId.String()).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list venue events: %v", err)
	}

	var events []*Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal venue events: %v", err)
	}

	return events, int(count), nil
}

// UpdateEventFields overwrites the given columns on a single event row. Every
// lifecycle transition goes through here as one conditional update; there is
// no multi-row transaction anywhere in the app.
func (su *SupabaseRepo) UpdateEventFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	raw, count, err := client.From(EventsTable).
		Update(fields, "representation", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %v", err)
	}

	if count == 0 {
		return nil, ErrEventNotFound
	}

	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated event: %v", err)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no event data returned after update")
	}

	return &events[0], nil
}
