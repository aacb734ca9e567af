package sessions

import (
	"context"
	"time"

	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
)

// RunCompleter flips sessions whose end has passed to completed.
// Completion is driven by time passage, not by a request, so it runs
// as a background sweep. Blocks until ctx is done.
func RunCompleter(ctx context.Context, api API, every time.Duration, log logger.Logger) {
	if every <= 0 {
		every = time.Minute
	}

	tick := time.NewTicker(every)
	defer tick.Stop()

	sweepLog := log.With("session_completer")

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			err := api.CompletePast(ctx, time.Now().UTC())
			if err != nil {
				sweepLog.Error(errors.WrapFail(err, "complete past sessions"))
			}
		}
	}
}
