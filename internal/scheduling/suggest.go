package scheduling

import (
	"context"
	"time"

	"github.com/hireloop/interviewd/pkg/timeslot"
)

const (
	suggestStep          = 30 * time.Minute
	suggestLimit         = 10
	defaultLookaheadDays = 14
)

// SuggestTimes slides a fixed step across the candidate's available
// windows inside the lookahead horizon and returns the first few
// conflict-free slots of the requested duration. Invoked when
// MutualSlots comes back empty.
func (e *Engine) SuggestTimes(
	ctx context.Context,
	candidateID, recruiterID string,
	duration time.Duration,
	tz string,
	daysAhead int,
) ([]timeslot.Slot, error) {
	if daysAhead <= 0 {
		daysAhead = defaultLookaheadDays
	}

	now := e.now()
	horizon := now.AddDate(0, 0, daysAhead)

	windows, err := e.windows.Available(ctx, candidateID, now, horizon)
	if err != nil {
		return nil, err
	}

	var suggested []timeslot.Slot
	for _, w := range windows {
		for start := w.Start; !start.Add(duration).After(w.End); start = start.Add(suggestStep) {
			if !start.After(now) {
				continue
			}

			candidate := timeslot.Slot{Start: start, End: start.Add(duration), Timezone: tz}
			conflicts, err := e.Conflicts(ctx, candidateID, []timeslot.Slot{candidate}, "")
			if err != nil {
				return nil, err
			}
			if len(conflicts) == 0 {
				suggested = append(suggested, candidate)
			}
		}
	}

	timeslot.Sort(suggested)
	if len(suggested) > suggestLimit {
		suggested = suggested[:suggestLimit]
	}
	return suggested, nil
}
