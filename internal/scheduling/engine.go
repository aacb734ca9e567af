// Package scheduling implements the availability-resolution engine:
// mutual slot search, conflict detection, alternative suggestions and
// the interview lifecycle operations built on top of them.
package scheduling

import (
	"time"

	"github.com/hireloop/interviewd/internal/availability"
	"github.com/hireloop/interviewd/internal/notify"
	"github.com/hireloop/interviewd/internal/postings"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/internal/users"
	"github.com/hireloop/interviewd/pkg/logger"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

// Request is the inbound shape of a schedule operation.
type Request struct {
	JobID          string          `json:"jobPostingId"`
	CandidateID    string          `json:"candidateId"`
	PreferredTimes []timeslot.Slot `json:"preferredTimes"`
	Duration       int             `json:"duration"` // minutes
	Timezone       string          `json:"timezone"`
	Type           sessions.Type   `json:"interviewType,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

type ConfirmRequest struct {
	Confirmed bool   `json:"confirmed"`
	Notes     string `json:"notes,omitempty"`
}

type RescheduleRequest struct {
	NewStart time.Time `json:"newStartTime"`
	NewEnd   time.Time `json:"newEndTime"`
	Timezone string    `json:"timezone"`
	Reason   string    `json:"reason,omitempty"`
}

type Deps struct {
	Windows  availability.API
	Sessions sessions.API
	Users    users.API
	Postings postings.API
	Gateway  notify.Gateway
	Txn      repo.TxnRunner

	// Clock defaults to time.Now. Injected by tests.
	Clock func() time.Time
}

func New(deps Deps, log logger.Logger) *Engine {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	return &Engine{
		windows:  deps.Windows,
		sessions: deps.Sessions,
		users:    deps.Users,
		postings: deps.Postings,
		gateway:  deps.Gateway,
		txn:      deps.Txn,
		now:      now,
		log:      log.With("scheduling"),
	}
}

type Engine struct {
	windows  availability.API
	sessions sessions.API
	users    users.API
	postings postings.API
	gateway  notify.Gateway
	txn      repo.TxnRunner
	now      func() time.Time
	log      logger.Logger
}
