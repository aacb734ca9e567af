package sessions

import (
	"time"

	"github.com/hireloop/interviewd/pkg/timeslot"
)

type Status string

const (
	// StatusScheduled is the initial state; also restored when either
	// party withdraws a confirmation.
	StatusScheduled Status = "scheduled"

	// StatusConfirmed requires both parties' confirmation flags.
	StatusConfirmed Status = "confirmed"

	// StatusRescheduled is set when the time changes; both
	// confirmation flags are reset.
	StatusRescheduled Status = "rescheduled"

	// StatusCancelled is terminal.
	StatusCancelled Status = "cancelled"

	// StatusCompleted is reached by time passage, not by request.
	StatusCompleted Status = "completed"
)

type Type string

const (
	TypeVideo    Type = "video"
	TypePhone    Type = "phone"
	TypeInPerson Type = "in-person"
)

func ValidType(t Type) bool {
	return t == TypeVideo || t == TypePhone || t == TypeInPerson
}

// Interview is the reservation itself.
type Interview struct {
	ID          string    `json:"id"          bson:"_id,omitempty"`
	JobID       string    `json:"jobPostingId" bson:"job_id"`
	CandidateID string    `json:"candidateId" bson:"candidate_id"`
	RecruiterID string    `json:"recruiterId" bson:"recruiter_id"`
	Start       time.Time `json:"scheduledStart" bson:"start"`
	End         time.Time `json:"scheduledEnd"   bson:"end"`
	Timezone    string    `json:"timezone"    bson:"timezone"`
	Status      Status    `json:"status"      bson:"status"`
	Type        Type      `json:"interviewType" bson:"type"`
	MeetingLink string    `json:"meetingLink,omitempty" bson:"meeting_link,omitempty"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`

	CandidateConfirmed bool `json:"candidateConfirmed" bson:"candidate_confirmed"`
	RecruiterConfirmed bool `json:"recruiterConfirmed" bson:"recruiter_confirmed"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

func (i Interview) Span() timeslot.Slot {
	return timeslot.Slot{Start: i.Start, End: i.End, Timezone: i.Timezone}
}

// Active reports whether the session still occupies its span.
func (i Interview) Active() bool {
	return i.Status != StatusCancelled
}

const (
	fieldCandidateID = "candidate_id"
	fieldJobID       = "job_id"
)
