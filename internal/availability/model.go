package availability

import (
	"time"

	"github.com/hireloop/interviewd/pkg/timeslot"
)

type Status string

const (
	// StatusAvailable windows are the only ones the resolver books from.
	StatusAvailable Status = "available"

	// StatusBooked is set by the ledger while a session occupies the window.
	StatusBooked Status = "booked"

	// StatusUnavailable marks a span the candidate explicitly blocked.
	StatusUnavailable Status = "unavailable"
)

// Window is a candidate-declared time range. Its status is mutated
// only by the booking ledger or by the owning candidate.
type Window struct {
	ID          string      `json:"id"                 bson:"_id,omitempty"`
	CandidateID string      `json:"candidateId"        bson:"candidate_id"`
	Start       time.Time   `json:"startTime"          bson:"start_time"`
	End         time.Time   `json:"endTime"            bson:"end_time"`
	Timezone    string      `json:"timezone"           bson:"timezone"`
	Status      Status      `json:"status"             bson:"status"`
	Recurring   bool        `json:"isRecurring"        bson:"is_recurring"`
	Recurrence  *Recurrence `json:"recurrencePattern,omitempty" bson:"recurrence_pattern,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"          bson:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt"          bson:"updated_at"`
}

// Recurrence describes how a window repeats. Stored as declared by
// the candidate; expansion into concrete windows is up to the owner.
type Recurrence struct {
	Type           string         `json:"type"                     bson:"type"`
	Interval       int            `json:"interval"                 bson:"interval"`
	DaysOfWeek     []time.Weekday `json:"daysOfWeek,omitempty"     bson:"days_of_week,omitempty"`
	Until          *time.Time     `json:"endDate,omitempty"        bson:"until,omitempty"`
	MaxOccurrences int            `json:"maxOccurrences,omitempty" bson:"max_occurrences,omitempty"`
}

func (w Window) Span() timeslot.Slot {
	return timeslot.Slot{Start: w.Start, End: w.End, Timezone: w.Timezone}
}

const (
	fieldCandidateID = "candidate_id"
	fieldStatus      = "status"
)
