package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

// Conflicts enumerates every non-cancelled session of the candidate
// that overlaps one of the probed slots. Read-only; excludeID skips
// the session being rescheduled.
func (e *Engine) Conflicts(ctx context.Context, candidateID string, slots []timeslot.Slot, excludeID string) ([]faults.ConflictInfo, error) {
	var found []faults.ConflictInfo

	for _, slot := range slots {
		overlapping, err := e.sessions.Overlapping(ctx, candidateID, slot, excludeID)
		if err != nil {
			return nil, err
		}

		for _, s := range overlapping {
			found = append(found, faults.ConflictInfo{
				Type: "interview",
				Slot: s.Span(),
				Description: fmt.Sprintf("existing interview from %s to %s",
					s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339)),
				InterviewID: s.ID,
			})
		}
	}

	return found, nil
}
