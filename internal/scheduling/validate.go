package scheduling

import (
	"time"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

// maxDurationMinutes caps a single interview at eight hours.
const maxDurationMinutes = 480

func (e *Engine) validateScheduleRequest(req Request) error {
	if req.JobID == "" {
		return faults.Invalid("jobPostingId", req.JobID, "must not be empty")
	}
	if req.CandidateID == "" {
		return faults.Invalid("candidateId", req.CandidateID, "must not be empty")
	}
	if len(req.PreferredTimes) == 0 {
		return faults.Invalid("preferredTimes", req.PreferredTimes, "must not be empty")
	}

	now := e.now()
	for _, slot := range req.PreferredTimes {
		if !slot.Valid() {
			return faults.Invalid("preferredTimes", slot.String(), "start must be before end")
		}
		if !slot.Start.After(now) {
			return faults.Invalid("preferredTimes", slot.String(), "start must be in the future")
		}
	}

	if req.Duration <= 0 || req.Duration > maxDurationMinutes {
		return faults.Invalid("duration", req.Duration, "must be between 1 and 480 minutes")
	}

	err := validTimezone(req.Timezone)
	if err != nil {
		return err
	}

	if req.Type != "" && !sessions.ValidType(req.Type) {
		return faults.Invalid("interviewType", req.Type, "must be video, phone or in-person")
	}

	return nil
}

func (e *Engine) validateNewSlot(req RescheduleRequest) (timeslot.Slot, error) {
	slot := timeslot.New(req.NewStart, req.NewEnd, req.Timezone)

	if !slot.Valid() {
		return timeslot.Slot{}, faults.Invalid("newEndTime", req.NewEnd, "must be after newStartTime")
	}
	if !slot.Start.After(e.now()) {
		return timeslot.Slot{}, faults.Invalid("newStartTime", req.NewStart, "must be in the future")
	}

	err := validTimezone(req.Timezone)
	if err != nil {
		return timeslot.Slot{}, err
	}

	return slot, nil
}

func validTimezone(tz string) error {
	if tz == "" {
		return faults.Invalid("timezone", tz, "must not be empty")
	}
	_, err := time.LoadLocation(tz)
	if err != nil {
		return faults.Invalid("timezone", tz, "unknown IANA zone")
	}
	return nil
}
