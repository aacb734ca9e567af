// Package users holds the minimal profile records the engine needs
// for access checks and notification routing.
package users

import (
	"context"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/logger"
)

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
)

type User struct {
	ID       string `json:"id"       bson:"_id,omitempty"`
	Username string `json:"username" bson:"username"`
	Telegram int64  `json:"telegram" bson:"telegram"`
	Role     Role   `json:"role"     bson:"role"`
}

type API interface {
	Get(ctx context.Context, id string) (*User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Upsert(ctx context.Context, u User) (id string, err error)
}

func New(r repo.Repo[User], log logger.Logger) API {
	return &repoAPI{repo: r, log: log.With("users")}
}

type repoAPI struct {
	repo repo.Repo[User]
	log  logger.Logger
}

func (r *repoAPI) Get(ctx context.Context, id string) (*User, error) {
	found, err := r.repo.Select(ctx, repo.ByID(id))
	if err != nil {
		return nil, faults.Database("get user", err)
	}
	if len(found) == 0 {
		return nil, faults.NotFound("user", id)
	}

	return &found[0], nil
}

func (r *repoAPI) Exists(ctx context.Context, id string) (bool, error) {
	found, err := r.repo.Select(ctx, repo.ByID(id))
	if err != nil {
		return false, faults.Database("check user", err)
	}
	return len(found) > 0, nil
}

func (r *repoAPI) Upsert(ctx context.Context, u User) (string, error) {
	if u.ID != "" {
		existing, err := r.repo.Select(ctx, repo.ByID(u.ID))
		if err != nil {
			return "", faults.Database("check user", err)
		}
		if len(existing) > 0 {
			err = r.repo.Update(ctx, func(old *User) { *old = u }, repo.ByID(u.ID))
			return u.ID, faults.Database("update user", err)
		}
	}

	id, err := r.repo.Insert(ctx, u)
	return id, faults.Database("insert user", err)
}
