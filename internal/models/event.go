package models

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusApproved  EventStatus = "approved"
	EventStatusRejected  EventStatus = "rejected"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID      uuid.UUID `db:"id" json:"id"`
	VenueID uuid.UUID `db:"venue_id" json:"venue_id"` // owning user, immutable after creation

	// CONTENT
	Title       string   `db:"title" json:"title" validate:"required"`
	Description string   `db:"description" json:"description" validate:"required"`
	Category    string   `db:"category" json:"category" validate:"required"`
	Date        string   `db:"date" json:"date" validate:"required"` // YYYY-MM-DD
	Time        string   `db:"time" json:"time" validate:"required"` // HH:MM (24h)
	Location    string   `db:"location" json:"location" validate:"required"`
	Price       float64  `db:"price" json:"price" validate:"gte=0"`
	ImageURL    string   `db:"image_url" json:"image_url,omitempty"`
	ContactInfo string   `db:"contact_info" json:"contact_info,omitempty"`
	Tags        []string `db:"tags" json:"tags,omitempty"`

	// Capacity is a ceiling for active "going" RSVPs; nil means unlimited.
	Capacity *int `db:"capacity" json:"capacity,omitempty" validate:"omitempty,gt=0"`

	// MODERATION & CANCELLATION
	Status          EventStatus `db:"status" json:"status"`
	RejectionReason string      `db:"rejection_reason" json:"rejection_reason,omitempty"`

	CancellationRequested   bool       `db:"cancellation_requested" json:"cancellation_requested"`
	CancellationReason      string     `db:"cancellation_reason" json:"cancellation_reason,omitempty"`
	CancellationRequestedAt *time.Time `db:"cancellation_requested_at" json:"cancellation_requested_at,omitempty"`
	CancellationApproved    bool       `db:"cancellation_approved_by_admin" json:"cancellation_approved_by_admin"`
	CancelledAt             *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"` // advanced by a DB trigger on every write
}

// EventCounts are the aggregates derived from active RSVP rows; never stored.
type EventCounts struct {
	EventID         uuid.UUID `json:"event_id"`
	InterestedCount int       `json:"interested_count"`
	GoingCount      int       `json:"going_count"`
	// CapacityUtilization is going_count / capacity; 0 when capacity is unlimited.
	CapacityUtilization float64 `json:"capacity_utilization,omitempty"`
}

func NewEventCounts(eventID uuid.UUID, interested, going int, capacity *int) EventCounts {
	counts := EventCounts{
		EventID:         eventID,
		InterestedCount: interested,
		GoingCount:      going,
	}
	if capacity != nil && *capacity > 0 {
		counts.CapacityUtilization = float64(going) / float64(*capacity)
	}
	return counts
}
