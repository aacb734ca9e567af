package api

import (
	"context"

	"github.com/hireloop/interviewd/internal/scheduling"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/internal/users"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Scheduler is the slice of the engine the HTTP layer drives.
type Scheduler interface {
	Schedule(ctx context.Context, recruiterUserID string, req scheduling.Request) (*sessions.Interview, error)
	Confirm(ctx context.Context, userID, interviewID string, role users.Role, req scheduling.ConfirmRequest) (*sessions.Interview, error)
	Reschedule(ctx context.Context, userID, interviewID string, role users.Role, req scheduling.RescheduleRequest) (*sessions.Interview, error)
	Cancel(ctx context.Context, userID, interviewID string, role users.Role, reason string) (*sessions.Interview, error)
}
