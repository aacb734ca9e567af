// Package notify carries lifecycle events out of the scheduling core.
// Delivery is best-effort by contract: a failed notification never
// fails the operation that produced it.
package notify

import (
	"context"
	"time"

	"github.com/hireloop/interviewd/pkg/logger"
)

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=notify

type Kind string

const (
	KindScheduled   Kind = "interview.scheduled"
	KindConfirmed   Kind = "interview.confirmed"
	KindRescheduled Kind = "interview.rescheduled"
	KindCancelled   Kind = "interview.cancelled"
)

// Event is published after the transactional core commits and is
// consumed asynchronously by the delivery worker.
type Event struct {
	ID          string         `json:"id"`
	Kind        Kind           `json:"kind"`
	InterviewID string         `json:"interview_id"`
	Recipients  []string       `json:"recipients"`
	Payload     map[string]any `json:"payload,omitempty"`
	At          time.Time      `json:"at"`
}

// Gateway never surfaces delivery errors to the caller.
type Gateway interface {
	Notify(ctx context.Context, event Event)
}

// Sender delivers one rendered message to one user.
type Sender interface {
	Send(ctx context.Context, userID string, text string) error
}

// NewLogGateway returns a gateway that only logs events. Used in
// development when no broker is configured.
func NewLogGateway(log logger.Logger) Gateway {
	return &logGateway{log: log.With("notify")}
}

type logGateway struct {
	log logger.Logger
}

func (g *logGateway) Notify(_ context.Context, event Event) {
	g.log.Infof("event %s for interview %s -> %v", event.Kind, event.InterviewID, event.Recipients)
}
