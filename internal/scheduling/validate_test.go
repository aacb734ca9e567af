package scheduling

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/sessions"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

func Test_validateScheduleRequest(t *testing.T) {
	type testcase struct {
		name      string
		mutate    func(*Request)
		wantField string
	}

	tests := [...]testcase{
		{
			name:   "valid",
			mutate: func(*Request) {},
		},
		{
			name:      "missing posting",
			mutate:    func(r *Request) { r.JobID = "" },
			wantField: "jobPostingId",
		},
		{
			name:      "missing candidate",
			mutate:    func(r *Request) { r.CandidateID = "" },
			wantField: "candidateId",
		},
		{
			name:      "no preferred times",
			mutate:    func(r *Request) { r.PreferredTimes = nil },
			wantField: "preferredTimes",
		},
		{
			name: "inverted slot",
			mutate: func(r *Request) {
				r.PreferredTimes = []timeslot.Slot{{Start: mon(11, 0), End: mon(10, 0)}}
			},
			wantField: "preferredTimes",
		},
		{
			name: "slot in the past",
			mutate: func(r *Request) {
				r.PreferredTimes = []timeslot.Slot{{Start: mon(7, 0), End: mon(7, 30)}}
			},
			wantField: "preferredTimes",
		},
		{
			name:      "zero duration",
			mutate:    func(r *Request) { r.Duration = 0 },
			wantField: "duration",
		},
		{
			name:      "negative duration",
			mutate:    func(r *Request) { r.Duration = -30 },
			wantField: "duration",
		},
		{
			name:      "duration over eight hours",
			mutate:    func(r *Request) { r.Duration = 481 },
			wantField: "duration",
		},
		{
			name:      "empty timezone",
			mutate:    func(r *Request) { r.Timezone = "" },
			wantField: "timezone",
		},
		{
			name:      "unknown timezone",
			mutate:    func(r *Request) { r.Timezone = "Mars/Olympus" },
			wantField: "timezone",
		},
		{
			name:      "unknown interview type",
			mutate:    func(r *Request) { r.Type = "carrier-pigeon" },
			wantField: "interviewType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := validRequest()
			tt.mutate(&req)

			err := f.engine.validateScheduleRequest(req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var verr *faults.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func Test_validateScheduleRequest_acceptsKnownTypes(t *testing.T) {
	f := newFixture(t)

	for _, typ := range []sessions.Type{sessions.TypeVideo, sessions.TypePhone, sessions.TypeInPerson} {
		req := validRequest()
		req.Type = typ
		require.NoError(t, f.engine.validateScheduleRequest(req))
	}
}

func Test_validateNewSlot(t *testing.T) {
	type testcase struct {
		name    string
		req     RescheduleRequest
		wantErr bool
	}

	tests := [...]testcase{
		{
			name: "valid",
			req:  RescheduleRequest{NewStart: mon(11, 0), NewEnd: mon(11, 30), Timezone: "UTC"},
		},
		{
			name:    "inverted",
			req:     RescheduleRequest{NewStart: mon(11, 30), NewEnd: mon(11, 0), Timezone: "UTC"},
			wantErr: true,
		},
		{
			name:    "in the past",
			req:     RescheduleRequest{NewStart: mon(7, 0), NewEnd: mon(7, 30), Timezone: "UTC"},
			wantErr: true,
		},
		{
			name:    "bad timezone",
			req:     RescheduleRequest{NewStart: mon(11, 0), NewEnd: mon(11, 30), Timezone: "Nowhere"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			got, err := f.engine.validateNewSlot(tt.req)
			if tt.wantErr {
				var verr *faults.ValidationError
				require.ErrorAs(t, err, &verr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.req.NewStart, got.Start)
			require.Equal(t, tt.req.NewEnd, got.End)
		})
	}
}
