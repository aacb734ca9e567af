package availability

import (
	"context"
	"time"

	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/logger"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

type API interface {
	// Declare registers a new window for its owning candidate.
	Declare(ctx context.Context, w Window) (id string, err error)

	Get(ctx context.Context, candidateID, windowID string) (*Window, error)

	List(ctx context.Context, candidateID string) ([]Window, error)

	// Available returns the candidate's available windows overlapping
	// [from, to). A zero `to` means no upper bound.
	Available(ctx context.Context, candidateID string, from, to time.Time) ([]Window, error)

	// Reframe moves a window to a new span. Owner only, and only
	// while the window is still available.
	Reframe(ctx context.Context, candidateID, windowID string, span timeslot.Slot) error

	// Remove deletes a window. Owner only, available windows only.
	Remove(ctx context.Context, candidateID, windowID string) error

	// MarkBooked flips every available window overlapping span to
	// booked. The whole window is flipped, not split.
	MarkBooked(ctx context.Context, candidateID string, span timeslot.Slot) error

	// Release flips booked windows overlapping span back to available.
	Release(ctx context.Context, candidateID string, span timeslot.Slot) error
}

func New(r repo.Repo[Window], log logger.Logger) API {
	return &repoAPI{
		repo: r,
		log:  log.With("availability"),
	}
}
