package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ruslanbaghirov/eventa-app/internal/connect"
	"github.com/ruslanbaghirov/eventa-app/internal/helpers"
	"github.com/ruslanbaghirov/eventa-app/internal/models"
)

type EventService struct {
	eventsRepo models.EventsRepo
	rsvpRepo   models.RSVPRepo
}

func NewEventService(eventsRepo models.EventsRepo, rsvpRepo models.RSVPRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
		rsvpRepo:   rsvpRepo,
	}
}

// eventFields are the columns a venue may overwrite through Edit. Status,
// ownership and the cancellation axis only ever move through the dedicated
// transition operations.
var editableEventFields = map[string]bool{
	"title":        true,
	"description":  true,
	"category":     true,
	"date":         true,
	"time":         true,
	"location":     true,
	"price":        true,
	"image_url":    true,
	"contact_info": true,
	"tags":         true,
	"capacity":     true,
}

// SubmitEvent creates a new event in pending state on behalf of the venue.
func (es *EventService) SubmitEvent(ctx context.Context, event *models.Event, venueId uuid.UUID, accessToken string) (*models.Event, error) {
	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("invalid event data provided: %v", err)
	}

	// Upload the event image first if one was attached
	var uploadedPublicID string
	if strings.HasPrefix(event.ImageURL, "data:") {
		uploadChan := make(chan struct {
			url      string
			publicID string
		}, 1)
		errorChan := make(chan error, 1)

		go func() {
			url, publicID, uploadErr := helpers.UploadImage(ctx, connect.Cld, event.ImageURL, helpers.EventsFolder, helpers.MaxEventImageBytes)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- struct {
				url      string
				publicID string
			}{url, publicID}
		}()

		select {
		case result := <-uploadChan:
			event.ImageURL = result.url
			uploadedPublicID = result.publicID
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload image: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	now := time.Now()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.VenueID = venueId
	event.Status = models.EventStatusPending
	event.RejectionReason = ""
	event.CancellationRequested = false
	event.CreatedAt = now
	event.UpdatedAt = now

	created, err := es.eventsRepo.CreateEvent(ctx, event, accessToken)
	if err != nil {
		// If event creation fails, clean up the uploaded image
		if uploadedPublicID != "" {
			helpers.DeleteImages(ctx, connect.Cld, []string{uploadedPublicID})
		}
		return nil, err
	}

	return created, nil
}

func (es *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid event ID")
	}
	return es.eventsRepo.GetEventByID(ctx, id)
}

// ListEvents returns approved events for public browsing, newest first as the
// store returns them, optionally narrowed to one category.
func (es *EventService) ListEvents(ctx context.Context, category string, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	filters := map[string]string{"status": string(models.EventStatusApproved)}
	if strings.TrimSpace(category) != "" {
		filters["category"] = category
	}

	return es.eventsRepo.ListEvents(ctx, filters, offset, limit)
}

func (es *EventService) ListVenueEvents(ctx context.Context, venueId uuid.UUID, offset, limit int, accessToken string) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	if venueId == uuid.Nil {
		return nil, 0, fmt.Errorf("invalid venue ID")
	}

	return es.eventsRepo.ListEventsByVenue(ctx, venueId, offset, limit, accessToken)
}

// EditEvent overwrites a subset of content fields. Any status except cancelled
// is editable; editing a rejected event does not resubmit it. Lowering the
// capacity below the current count of active "going" RSVPs is rejected with
// no partial write.
func (es *EventService) EditEvent(ctx context.Context, eventId, callerId uuid.UUID, isAdmin bool, updates map[string]interface{}, accessToken string) (*models.Event, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	event, err := es.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}

	if event.VenueID != callerId && !isAdmin {
		return nil, models.ErrForbidden
	}
	if err := models.ValidateEditable(event); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if !editableEventFields[key] {
			return nil, fmt.Errorf("field %q cannot be edited", key)
		}
		fields[key] = value
	}

	if rawCapacity, ok := fields["capacity"]; ok {
		newCapacity, err := parseCapacity(rawCapacity)
		if err != nil {
			return nil, err
		}
		_, going, err := es.rsvpRepo.CountActiveRSVPs(ctx, eventId)
		if err != nil {
			return nil, fmt.Errorf("failed to count attendees: %v", err)
		}
		if err := models.ValidateCapacityChange(newCapacity, going); err != nil {
			return nil, err
		}
	}

	return es.eventsRepo.UpdateEventFields(ctx, eventId, fields, accessToken)
}

func parseCapacity(raw interface{}) (*int, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil // unlimited
	case float64:
		// JSON numbers decode as float64
		capacity := int(v)
		if capacity <= 0 || float64(capacity) != v {
			return nil, fmt.Errorf("capacity must be a positive integer")
		}
		return &capacity, nil
	case int:
		if v <= 0 {
			return nil, fmt.Errorf("capacity must be a positive integer")
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("capacity must be a positive integer or null")
	}
}

// RequestCancellation records the venue's wish to cancel an approved event.
// The event stays approved and visible until an admin decides the request.
func (es *EventService) RequestCancellation(ctx context.Context, eventId, callerId uuid.UUID, reason string, accessToken string) (*models.Event, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}

	if event.VenueID != callerId {
		return nil, models.ErrForbidden
	}
	if err := models.ValidateCancellationRequest(event, reason); err != nil {
		return nil, err
	}

	return es.eventsRepo.UpdateEventFields(ctx, eventId, map[string]interface{}{
		"cancellation_requested":    true,
		"cancellation_reason":       strings.TrimSpace(reason),
		"cancellation_requested_at": time.Now(),
	}, accessToken)
}

// ApproveEvent moves a pending event to approved and clears any leftover
// rejection reason.
func (es *EventService) ApproveEvent(ctx context.Context, eventId uuid.UUID, accessToken string) (*models.Event, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateApprove(event); err != nil {
		return nil, err
	}

	return es.eventsRepo.UpdateEventFields(ctx, eventId, map[string]interface{}{
		"status":           models.EventStatusApproved,
		"rejection_reason": nil,
	}, accessToken)
}

// RejectEvent moves a pending event to rejected. Rejected is terminal for the
// submission; there is no resubmission path.
func (es *EventService) RejectEvent(ctx context.Context, eventId uuid.UUID, reason string, accessToken string) (*models.Event, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateReject(event, reason); err != nil {
		return nil, err
	}

	return es.eventsRepo.UpdateEventFields(ctx, eventId, map[string]interface{}{
		"status":           models.EventStatusRejected,
		"rejection_reason": strings.TrimSpace(reason),
	}, accessToken)
}

// ApproveCancellation finalises a pending cancellation request. The event
// becomes cancelled but remains permanently queryable; its RSVP rows are left
// untouched.
func (es *EventService) ApproveCancellation(ctx context.Context, eventId uuid.UUID, accessToken string) (*models.Event, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateCancellationApproval(event); err != nil {
		return nil, err
	}

	return es.eventsRepo.UpdateEventFields(ctx, eventId, map[string]interface{}{
		"status":                         models.EventStatusCancelled,
		"cancellation_approved_by_admin": true,
		"cancelled_at":                   time.Now(),
	}, accessToken)
}

// RejectCancellation clears the request entirely; the event stays approved and
// fully editable, as if the request had never been made.
func (es *EventService) RejectCancellation(ctx context.Context, eventId uuid.UUID, accessToken string) (*models.Event, error) {
	event, err := es.eventsRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateCancellationRejection(event); err != nil {
		return nil, err
	}

	return es.eventsRepo.UpdateEventFields(ctx, eventId, map[string]interface{}{
		"cancellation_requested":    false,
		"cancellation_reason":       nil,
		"cancellation_requested_at": nil,
	}, accessToken)
}

func (es *EventService) ListPendingEvents(ctx context.Context, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return es.eventsRepo.ListEvents(ctx, map[string]string{
		"status": string(models.EventStatusPending),
	}, offset, limit)
}

func (es *EventService) ListCancellationRequests(ctx context.Context, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return es.eventsRepo.ListEvents(ctx, map[string]string{
		"status":                         string(models.EventStatusApproved),
		"cancellation_requested":         "true",
		"cancellation_approved_by_admin": "false",
	}, offset, limit)
}
