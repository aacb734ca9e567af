package scheduling

import (
	"context"
	"time"

	"github.com/hireloop/interviewd/pkg/timeslot"
)

// MutualSlots intersects the recruiter's preferred times with the
// candidate's available windows and returns conflict-free slots of
// exactly the requested duration, sorted ascending. An empty result
// is not an error.
func (e *Engine) MutualSlots(
	ctx context.Context,
	candidateID, recruiterID string,
	preferred []timeslot.Slot,
	duration time.Duration,
	tz string,
) ([]timeslot.Slot, error) {
	windows, err := e.windows.Available(ctx, candidateID, e.now(), time.Time{})
	if err != nil {
		return nil, err
	}

	var candidates []timeslot.Slot
	for _, p := range preferred {
		for _, w := range windows {
			overlap, ok := timeslot.Intersect(p, w.Span())
			if !ok || overlap.Duration() < duration {
				continue
			}
			// truncate to exactly the requested duration
			candidates = append(candidates, timeslot.Slot{
				Start:    overlap.Start,
				End:      overlap.Start.Add(duration),
				Timezone: tz,
			})
		}
	}

	var mutual []timeslot.Slot
	for _, c := range candidates {
		conflicts, err := e.Conflicts(ctx, candidateID, []timeslot.Slot{c}, "")
		if err != nil {
			return nil, err
		}
		if len(conflicts) == 0 {
			mutual = append(mutual, c)
		}
	}

	mutual = timeslot.Dedupe(mutual)
	timeslot.Sort(mutual)
	return mutual, nil
}
