// Package postings exposes the slice of job postings the scheduler
// needs: ownership lookups. Posting CRUD lives elsewhere.
package postings

import (
	"context"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/logger"
)

type Posting struct {
	ID          string `json:"id"          bson:"_id,omitempty"`
	RecruiterID string `json:"recruiterId" bson:"recruiter_id"`
	Title       string `json:"title"       bson:"title"`
	Active      bool   `json:"active"      bson:"active"`
}

type API interface {
	Find(ctx context.Context, id string) (*Posting, error)
	Add(ctx context.Context, p Posting) (id string, err error)
}

func New(r repo.Repo[Posting], log logger.Logger) API {
	return &repoAPI{repo: r, log: log.With("postings")}
}

type repoAPI struct {
	repo repo.Repo[Posting]
	log  logger.Logger
}

func (r *repoAPI) Find(ctx context.Context, id string) (*Posting, error) {
	found, err := r.repo.Select(ctx, repo.ByID(id))
	if err != nil {
		return nil, faults.Database("find posting", err)
	}
	if len(found) == 0 {
		return nil, faults.NotFound("job posting", id)
	}

	return &found[0], nil
}

func (r *repoAPI) Add(ctx context.Context, p Posting) (string, error) {
	id, err := r.repo.Insert(ctx, p)
	return id, faults.Database("insert posting", err)
}
