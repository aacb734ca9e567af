package availability

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
	repo repo.Repo[Window]
	log  logger.Logger
}

func (r *repoAPI) Declare(ctx context.Context, w Window) (string, error) {
	if !w.Span().Valid() {
		return "", faults.Invalid("endTime", w.End, "must be after startTime")
	}
	if w.CandidateID == "" {
		return "", faults.Invalid("candidateId", w.CandidateID, "must not be empty")
	}
	if w.Status == "" {
		w.Status = StatusAvailable
	}

	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now

	id, err := r.repo.Insert(ctx, w)
	return id, faults.Database("declare window", err)
}

func (r *repoAPI) Get(ctx context.Context, candidateID, windowID string) (*Window, error) {
	found, err := r.repo.Select(ctx,
		repo.ByID(windowID),
		repo.ByField(fieldCandidateID, candidateID),
	)
	if err != nil {
		return nil, faults.Database("get window", err)
	}
	if len(found) == 0 {
		return nil, faults.NotFound("availability window", windowID)
	}

	return &found[0], nil
}

func (r *repoAPI) List(ctx context.Context, candidateID string) ([]Window, error) {
	windows, err := r.repo.Select(ctx, repo.ByField(fieldCandidateID, candidateID))
	if err != nil {
		return nil, faults.Database("list windows", err)
	}

	sortByStart(windows)
	return windows, nil
}

func (r *repoAPI) Available(ctx context.Context, candidateID string, from, to time.Time) ([]Window, error) {
	windows, err := r.repo.Select(ctx,
		repo.ByField(fieldCandidateID, candidateID),
		repo.ByField(fieldStatus, StatusAvailable),
		repo.Where(func(w Window) bool {
			if w.End.Before(from) || w.End.Equal(from) {
				return false
			}
			if !to.IsZero() && !w.Start.Before(to) {
				return false
			}
			return true
		}),
	)
	if err != nil {
		return nil, faults.Database("list available windows", err)
	}

	sortByStart(windows)
	return windows, nil
}

func (r *repoAPI) Reframe(ctx context.Context, candidateID, windowID string, span timeslot.Slot) error {
	if !span.Valid() {
		return faults.Invalid("endTime", span.End, "must be after startTime")
	}

	w, err := r.Get(ctx, candidateID, windowID)
	if err != nil {
		return err
	}
	if w.Status != StatusAvailable {
		return faults.Conflict("window %s is %s and cannot be edited", windowID, w.Status)
	}

	err = r.repo.Update(ctx, func(w *Window) {
		w.Start = span.Start
		w.End = span.End
		if span.Timezone != "" {
			w.Timezone = span.Timezone
		}
		w.UpdatedAt = time.Now().UTC()
	}, repo.ByID(windowID))

	return faults.Database("reframe window", err)
}

func (r *repoAPI) Remove(ctx context.Context, candidateID, windowID string) error {
	w, err := r.Get(ctx, candidateID, windowID)
	if err != nil {
		return err
	}
	if w.Status != StatusAvailable {
		return faults.Conflict("window %s is %s and cannot be deleted", windowID, w.Status)
	}

	deleted, err := r.repo.Delete(ctx, windowID)
	if err != nil {
		return faults.Database("remove window", err)
	}
	if !deleted {
		return faults.NotFound("availability window", windowID)
	}
	return nil
}

func (r *repoAPI) MarkBooked(ctx context.Context, candidateID string, span timeslot.Slot) error {
	return r.flip(ctx, candidateID, span, StatusAvailable, StatusBooked)
}

func (r *repoAPI) Release(ctx context.Context, candidateID string, span timeslot.Slot) error {
	return r.flip(ctx, candidateID, span, StatusBooked, StatusAvailable)
}

func (r *repoAPI) flip(ctx context.Context, candidateID string, span timeslot.Slot, from, to Status) error {
	err := r.repo.Update(ctx,
		func(w *Window) {
			w.Status = to
			w.UpdatedAt = time.Now().UTC()
		},
		repo.ByField(fieldCandidateID, candidateID),
		repo.ByField(fieldStatus, from),
		repo.Where(func(w Window) bool {
			return w.Span().Overlaps(span)
		}),
	)
	return faults.Database("flip window status", err)
}

func sortByStart(windows []Window) {
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})
}
