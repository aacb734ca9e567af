package repo

import (
	"context"
)

// Repo is a minimal typed collection over the underlying store.
type Repo[T any] interface {
	Insert(ctx context.Context, data T) (id string, err error)
	Select(ctx context.Context, filters ...Filter) (selected []T, err error)
	Update(ctx context.Context, mutate func(*T), filters ...Filter) (err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}

// TxnRunner executes do atomically: either every write made through
// repos sharing the same client commits, or none of them do.
// The ctx passed to do must be used for all calls inside it.
type TxnRunner interface {
	Txn(ctx context.Context, do func(ctx context.Context) error) error
}
