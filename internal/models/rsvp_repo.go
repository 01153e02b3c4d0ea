package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RSVPRepo interface {
	GetActiveRSVP(ctx context.Context, userId, eventId uuid.UUID, accessToken string) (*RSVP, error)
	CountActiveRSVPs(ctx context.Context, eventId uuid.UUID) (interested int, going int, err error)
	InsertRSVP(ctx context.Context, rsvp *RSVP, accessToken string) (*RSVP, error)
	UpdateRSVP(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*RSVP, error)
	ListActiveRSVPsByEvent(ctx context.Context, eventId uuid.UUID, accessToken string) ([]*RSVP, error)
	ListRSVPsByUser(ctx context.Context, userId uuid.UUID, accessToken string) ([]*RSVP, error)
}

// GetActiveRSVP returns the caller's active RSVP for the event, or nil when
// the pair has no active row.
func (su *SupabaseRepo) GetActiveRSVP(ctx context.Context, userId, eventId uuid.UUID, accessToken string) (*RSVP, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	raw, status, err := client.From(RSVPTable).
		Select("*", "", false).
		Eq("user_id", userId.String()).
		Eq("event_id", eventId.String()).
		Eq("status", string(RSVPStatusActive)).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("postgrest error: status=%d body=%s err=%v", status, string(raw), err)
		}
		return nil, fmt.Errorf("failed to get rsvp: %v", err)
	}

	var rsvps []RSVP
	if err := json.Unmarshal(raw, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rsvp rows: %v", err)
	}

	if len(rsvps) == 0 {
		return nil, nil
	}

	return &rsvps[0], nil
}

// CountActiveRSVPs counts active rows per type. Two head-only selects keep the
// payload empty; PostgREST returns the exact count in the Content-Range header.
func (su *SupabaseRepo) CountActiveRSVPs(ctx context.Context, eventId uuid.UUID) (int, int, error) {
	interested, err := su.countActiveByType(eventId, RSVPTypeInterested)
	if err != nil {
		return 0, 0, err
	}
	going, err := su.countActiveByType(eventId, RSVPTypeGoing)
	if err != nil {
		return 0, 0, err
	}
	return interested, going, nil
}

func (su *SupabaseRepo) countActiveByType(eventId uuid.UUID, rsvpType RSVPType) (int, error) {
	_, count, err := su.supabaseClient.From(RSVPTable).
		Select("id", "exact", false).
		Eq("event_id", eventId.String()).
		Eq("status", string(RSVPStatusActive)).
		Eq("rsvp_type", string(rsvpType)).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s rsvps: %v", rsvpType, err)
	}
	return int(count), nil
}

func (su *SupabaseRepo) InsertRSVP(ctx context.Context, rsvp *RSVP, accessToken string) (*RSVP, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	rsvpData := map[string]interface{}{
		"id":         rsvp.ID,
		"user_id":    rsvp.UserID,
		"event_id":   rsvp.EventID,
		"rsvp_type":  rsvp.Type,
		"status":     rsvp.Status,
		"created_at": rsvp.CreatedAt,
		"updated_at": rsvp.UpdatedAt,
	}

	raw, count, err := client.From(RSVPTable).
		Insert(rsvpData, false, "", "representation", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert rsvp: %v", err)
	}

	var created []RSVP
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created rsvp: %v", err)
	}
	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no rsvp data returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) UpdateRSVP(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*RSVP, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	fields["updated_at"] = time.Now()

	raw, count, err := client.From(RSVPTable).
		Update(fields, "representation", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update rsvp: %v", err)
	}

	if count == 0 {
		return nil, ErrRSVPNotFound
	}

	var rsvps []RSVP
	if err := json.Unmarshal(raw, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated rsvp: %v", err)
	}
	if len(rsvps) == 0 {
		return nil, fmt.Errorf("no rsvp data returned after update")
	}

	return &rsvps[0], nil
}

func (su *SupabaseRepo) ListActiveRSVPsByEvent(ctx context.Context, eventId uuid.UUID, accessToken string) ([]*RSVP, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	raw, _, err := client.From(RSVPTable).
		Select("*", "", false).
		Eq("event_id", eventId.String()).
		Eq("status", string(RSVPStatusActive)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list event rsvps: %v", err)
	}

	var rsvps []*RSVP
	if err := json.Unmarshal(raw, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event rsvps: %v", err)
	}

	return rsvps, nil
}

func (su *SupabaseRepo) ListRSVPsByUser(ctx context.Context, userId uuid.UUID, accessToken string) ([]*RSVP, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	raw, _, err := client.From(RSVPTable).
		Select("*", "", false).
		Eq("user_id", userId.String()).
		Eq("status", string(RSVPStatusActive)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list user rsvps: %v", err)
	}

	var rsvps []*RSVP
	if err := json.Unmarshal(raw, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user rsvps: %v", err)
	}

	return rsvps, nil
}
