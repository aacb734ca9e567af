package sessions

import (
	"context"
	"time"

	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/logger"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

type API interface {
	Create(ctx context.Context, i Interview) (id string, err error)

	Find(ctx context.Context, id string) (*Interview, error)

	FindByCandidate(ctx context.Context, candidateID string) ([]Interview, error)

	// FindActive returns the non-cancelled session for the candidate
	// and job pair, or nil if there is none.
	FindActive(ctx context.Context, candidateID, jobID string) (*Interview, error)

	// Overlapping returns every non-cancelled session of the candidate
	// whose span overlaps slot, skipping excludeID when non-empty.
	Overlapping(ctx context.Context, candidateID string, slot timeslot.Slot, excludeID string) ([]Interview, error)

	Update(ctx context.Context, id string, mutate func(*Interview)) error

	// CompletePast flips confirmed or scheduled sessions whose end has
	// passed to completed. Run by the background sweeper.
	CompletePast(ctx context.Context, now time.Time) error
}

func New(r repo.Repo[Interview], log logger.Logger) API {
	return &repoAPI{
		repo: r,
		log:  log.With("sessions"),
	}
}
