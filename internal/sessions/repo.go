package sessions

import (
	"context"
	"sort"
	"time"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/logger"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

type repoAPI struct {
	repo repo.Repo[Interview]
	log  logger.Logger
}

func (r *repoAPI) Create(ctx context.Context, i Interview) (string, error) {
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now

	id, err := r.repo.Insert(ctx, i)
	return id, faults.Database("create session", err)
}

func (r *repoAPI) Find(ctx context.Context, id string) (*Interview, error) {
	found, err := r.repo.Select(ctx, repo.ByID(id))
	if err != nil {
		return nil, faults.Database("find session", err)
	}
	if len(found) == 0 {
		return nil, faults.NotFound("interview session", id)
	}

	return &found[0], nil
}

func (r *repoAPI) FindByCandidate(ctx context.Context, candidateID string) ([]Interview, error) {
	found, err := r.repo.Select(ctx, repo.ByField(fieldCandidateID, candidateID))
	if err != nil {
		return nil, faults.Database("find sessions by candidate", err)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Start.Before(found[j].Start)
	})
	return found, nil
}

func (r *repoAPI) FindActive(ctx context.Context, candidateID, jobID string) (*Interview, error) {
	found, err := r.repo.Select(ctx,
		repo.ByField(fieldCandidateID, candidateID),
		repo.ByField(fieldJobID, jobID),
		repo.Where(func(i Interview) bool { return i.Active() }),
	)
	if err != nil {
		return nil, faults.Database("find active session", err)
	}
	if len(found) == 0 {
		return nil, nil
	}

	return &found[0], nil
}

func (r *repoAPI) Overlapping(ctx context.Context, candidateID string, slot timeslot.Slot, excludeID string) ([]Interview, error) {
	filters := []repo.Filter{
		repo.ByField(fieldCandidateID, candidateID),
		repo.Where(func(i Interview) bool {
			return i.Active() && i.Span().Overlaps(slot)
		}),
	}
	if excludeID != "" {
		filters = append(filters, repo.Exclude(excludeID))
	}

	found, err := r.repo.Select(ctx, filters...)
	if err != nil {
		return nil, faults.Database("find overlapping sessions", err)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Start.Before(found[j].Start)
	})
	return found, nil
}

func (r *repoAPI) Update(ctx context.Context, id string, mutate func(*Interview)) error {
	err := r.repo.Update(ctx, func(i *Interview) {
		mutate(i)
		i.UpdatedAt = time.Now().UTC()
	}, repo.ByID(id))

	return faults.Database("update session", err)
}

func (r *repoAPI) CompletePast(ctx context.Context, now time.Time) error {
	err := r.repo.Update(ctx,
		func(i *Interview) { i.Status = StatusCompleted },
		repo.Where(func(i Interview) bool {
			switch i.Status {
			case StatusScheduled, StatusConfirmed, StatusRescheduled:
				return i.End.Before(now)
			default:
				return false
			}
		}),
	)
	return faults.Database("complete past sessions", err)
}
