package models

// RSVPOutcome describes what a reconciled RSVP request did to the row.
type RSVPOutcome string

const (
	RSVPOutcomeCreated RSVPOutcome = "created"
	RSVPOutcomeChanged RSVPOutcome = "changed"
	RSVPOutcomeRemoved RSVPOutcome = "removed"
)

// ReconcileRSVP decides what a single RSVP click does, given the caller's
// current active RSVP for the event (nil if none), the event's capacity and
// the current count of active "going" rows.
//
// The ordering is deliberate: a "going" click from someone already going is a
// toggle-off and must short-circuit before the capacity check, otherwise a
// user already counted toward capacity could be blocked from touching their
// own row. The capacity check therefore only fires for callers whose current
// type is not "going".
func ReconcileRSVP(current *RSVP, requested RSVPType, capacity *int, goingCount int) (RSVPOutcome, error) {
	if !requested.Valid() {
		return "", ErrInvalidRSVPType
	}

	if current != nil && current.Type == requested {
		return RSVPOutcomeRemoved, nil
	}

	if requested == RSVPTypeGoing && capacity != nil && goingCount >= *capacity {
		return "", ErrCapacityFull
	}

	if current != nil {
		return RSVPOutcomeChanged, nil
	}
	return RSVPOutcomeCreated, nil
}
