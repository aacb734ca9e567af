package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/notify"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/internal/users"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

// Schedule books the first mutually available slot and creates the
// session. Check and book run under one transaction so that two
// concurrent requests for the same candidate cannot both pass the
// conflict check.
func (e *Engine) Schedule(ctx context.Context, recruiterUserID string, req Request) (*sessions.Interview, error) {
	err := e.validateScheduleRequest(req)
	if err != nil {
		return nil, err
	}

	posting, err := e.postings.Find(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if posting.RecruiterID != recruiterUserID {
		return nil, faults.Denied(recruiterUserID, "schedule interviews for this job posting")
	}

	exists, err := e.users.Exists(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, faults.NotFound("candidate", req.CandidateID)
	}

	active, err := e.sessions.FindActive(ctx, req.CandidateID, req.JobID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, faults.Conflict("candidate %s already has an active interview for job %s",
			req.CandidateID, req.JobID)
	}

	duration := time.Duration(req.Duration) * time.Minute
	slots, err := e.MutualSlots(ctx, req.CandidateID, recruiterUserID, req.PreferredTimes, duration, req.Timezone)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, e.noMutualAvailability(ctx, req, duration)
	}

	pick := slots[0]

	interview := sessions.Interview{
		ID:          uuid.New().String(),
		JobID:       req.JobID,
		CandidateID: req.CandidateID,
		RecruiterID: recruiterUserID,
		Start:       pick.Start,
		End:         pick.End,
		Timezone:    req.Timezone,
		Status:      sessions.StatusScheduled,
		Type:        req.Type,
		Notes:       req.Notes,
	}
	if interview.Type == "" {
		interview.Type = sessions.TypeVideo
	}
	if interview.Type == sessions.TypeVideo {
		interview.MeetingLink = meetingLink(interview.ID)
	}

	err = e.txn.Txn(ctx, func(ctx context.Context) error {
		// re-check under the transaction
		again, err := e.sessions.FindActive(ctx, req.CandidateID, req.JobID)
		if err != nil {
			return err
		}
		if again != nil {
			return faults.Conflict("candidate %s already has an active interview for job %s",
				req.CandidateID, req.JobID)
		}

		clash, err := e.sessions.Overlapping(ctx, req.CandidateID, pick, "")
		if err != nil {
			return err
		}
		if len(clash) > 0 {
			return faults.Conflict("slot %s was booked concurrently", pick)
		}

		err = e.windows.MarkBooked(ctx, req.CandidateID, pick)
		if err != nil {
			return err
		}

		_, err = e.sessions.Create(ctx, interview)
		return err
	})
	if err != nil {
		return nil, err
	}

	created, err := e.sessions.Find(ctx, interview.ID)
	if err != nil {
		return nil, err
	}

	e.publish(ctx, notify.KindScheduled, created)
	return created, nil
}

// Confirm records one party's acknowledgment. The session becomes
// confirmed only when both flags are set; withdrawing either one
// reverts it to scheduled.
func (e *Engine) Confirm(ctx context.Context, userID, interviewID string, role users.Role, req ConfirmRequest) (*sessions.Interview, error) {
	interview, err := e.sessions.Find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	err = access(userID, role, interview, "confirm this interview")
	if err != nil {
		return nil, err
	}

	if interview.Status == sessions.StatusCancelled || interview.Status == sessions.StatusCompleted {
		return nil, faults.Conflict("interview %s is %s", interviewID, interview.Status)
	}

	wasConfirmed := interview.Status == sessions.StatusConfirmed

	err = e.sessions.Update(ctx, interviewID, func(i *sessions.Interview) {
		if role == users.RoleCandidate {
			i.CandidateConfirmed = req.Confirmed
		} else {
			i.RecruiterConfirmed = req.Confirmed
		}

		if req.Notes != "" {
			i.Notes = appendNote(i.Notes, req.Notes)
		}

		if i.CandidateConfirmed && i.RecruiterConfirmed {
			i.Status = sessions.StatusConfirmed
		} else if !req.Confirmed {
			i.Status = sessions.StatusScheduled
		}
	})
	if err != nil {
		return nil, err
	}

	interview, err = e.sessions.Find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if !wasConfirmed && interview.Status == sessions.StatusConfirmed {
		e.publish(ctx, notify.KindConfirmed, interview)
	}
	return interview, nil
}

// Reschedule moves the session to a new span: the old span is freed,
// both confirmation flags reset, and the new span booked, atomically.
func (e *Engine) Reschedule(ctx context.Context, userID, interviewID string, role users.Role, req RescheduleRequest) (*sessions.Interview, error) {
	interview, err := e.sessions.Find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	err = access(userID, role, interview, "reschedule this interview")
	if err != nil {
		return nil, err
	}

	if interview.Status == sessions.StatusCancelled || interview.Status == sessions.StatusCompleted {
		return nil, faults.Conflict("interview %s is %s", interviewID, interview.Status)
	}

	newSlot, err := e.validateNewSlot(req)
	if err != nil {
		return nil, err
	}

	conflicts, err := e.Conflicts(ctx, interview.CandidateID, []timeslot.Slot{newSlot}, interviewID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &faults.SchedulingError{Conflicts: conflicts}
	}

	oldSpan := interview.Span()
	candidateID := interview.CandidateID

	err = e.txn.Txn(ctx, func(ctx context.Context) error {
		// re-check under the transaction
		clash, err := e.sessions.Overlapping(ctx, candidateID, newSlot, interviewID)
		if err != nil {
			return err
		}
		if len(clash) > 0 {
			return faults.Conflict("slot %s was booked concurrently", newSlot)
		}

		// free first so moving within the currently booked window works;
		// the transaction rolls the release back if the new span fails
		err = e.windows.Release(ctx, candidateID, oldSpan)
		if err != nil {
			return err
		}

		covered, err := e.covered(ctx, candidateID, newSlot)
		if err != nil {
			return err
		}
		if !covered {
			return &faults.SchedulingError{}
		}

		err = e.sessions.Update(ctx, interviewID, func(i *sessions.Interview) {
			i.Start = newSlot.Start
			i.End = newSlot.End
			i.Timezone = newSlot.Timezone
			i.Status = sessions.StatusRescheduled
			i.CandidateConfirmed = false
			i.RecruiterConfirmed = false
			if req.Reason != "" {
				i.Notes = appendNote(i.Notes, "Rescheduled: "+req.Reason)
			}
		})
		if err != nil {
			return err
		}

		return e.windows.MarkBooked(ctx, candidateID, newSlot)
	})
	if err != nil {
		return nil, err
	}

	interview, err = e.sessions.Find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	e.publish(ctx, notify.KindRescheduled, interview)
	return interview, nil
}

// Cancel is terminal and frees the booked span.
func (e *Engine) Cancel(ctx context.Context, userID, interviewID string, role users.Role, reason string) (*sessions.Interview, error) {
	interview, err := e.sessions.Find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	err = access(userID, role, interview, "cancel this interview")
	if err != nil {
		return nil, err
	}

	if interview.Status == sessions.StatusCancelled || interview.Status == sessions.StatusCompleted {
		return nil, faults.Conflict("interview %s is %s", interviewID, interview.Status)
	}

	span := interview.Span()
	candidateID := interview.CandidateID

	err = e.txn.Txn(ctx, func(ctx context.Context) error {
		err := e.windows.Release(ctx, candidateID, span)
		if err != nil {
			return err
		}

		return e.sessions.Update(ctx, interviewID, func(i *sessions.Interview) {
			i.Status = sessions.StatusCancelled
			if reason != "" {
				i.Notes = appendNote(i.Notes, "Cancelled: "+reason)
			}
		})
	})
	if err != nil {
		return nil, err
	}

	interview, err = e.sessions.Find(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	e.publish(ctx, notify.KindCancelled, interview)
	return interview, nil
}

func (e *Engine) noMutualAvailability(ctx context.Context, req Request, duration time.Duration) error {
	conflicts, err := e.Conflicts(ctx, req.CandidateID, req.PreferredTimes, "")
	if err != nil {
		e.log.Warn(err)
	}

	suggestions, err := e.SuggestTimes(ctx, req.CandidateID, "", duration, req.Timezone, 0)
	if err != nil {
		e.log.Warn(err)
	}

	return &faults.SchedulingError{Conflicts: conflicts, Suggestions: suggestions}
}

// covered reports whether some single available window holds the slot
// entirely.
func (e *Engine) covered(ctx context.Context, candidateID string, slot timeslot.Slot) (bool, error) {
	windows, err := e.windows.Available(ctx, candidateID, slot.Start, slot.End)
	if err != nil {
		return false, err
	}

	for _, w := range windows {
		if w.Span().Contains(slot) {
			return true, nil
		}
	}
	return false, nil
}

func (e *Engine) publish(ctx context.Context, kind notify.Kind, i *sessions.Interview) {
	e.gateway.Notify(ctx, notify.Event{
		Kind:        kind,
		InterviewID: i.ID,
		Recipients:  []string{i.CandidateID, i.RecruiterID},
		Payload: map[string]any{
			"jobPostingId": i.JobID,
			"start":        i.Start.Format(time.RFC3339),
			"end":          i.End.Format(time.RFC3339),
			"status":       string(i.Status),
		},
	})
}

func access(userID string, role users.Role, i *sessions.Interview, action string) error {
	switch role {
	case users.RoleCandidate:
		if i.CandidateID == userID {
			return nil
		}
	case users.RoleRecruiter:
		if i.RecruiterID == userID {
			return nil
		}
	}
	return faults.Denied(userID, action)
}

func appendNote(notes, extra string) string {
	if notes == "" {
		return extra
	}
	return notes + "\n" + extra
}

func meetingLink(interviewID string) string {
	return "https://meet.hireloop.io/" + interviewID
}
