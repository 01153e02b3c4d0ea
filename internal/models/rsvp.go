package models

import (
	"time"

	"github.com/google/uuid"
)

type RSVPType string

const (
	RSVPTypeInterested RSVPType = "interested"
	RSVPTypeGoing      RSVPType = "going"
)

type RSVPStatus string

const (
	RSVPStatusActive    RSVPStatus = "active"
	RSVPStatusCancelled RSVPStatus = "cancelled"
)

// RSVP links one user to one event. At most one active row exists per pair;
// repeated requests update the existing row instead of inserting a duplicate.
type RSVP struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	EventID   uuid.UUID  `db:"event_id" json:"event_id"`
	Type      RSVPType   `db:"rsvp_type" json:"rsvp_type"`
	Status    RSVPStatus `db:"status" json:"status"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

func (t RSVPType) Valid() bool {
	return t == RSVPTypeInterested || t == RSVPTypeGoing
}
