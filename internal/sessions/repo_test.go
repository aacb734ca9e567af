package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/interviewd/internal/faults"
	"github.com/hireloop/interviewd/internal/repo"
	"github.com/hireloop/interviewd/pkg/logger"
	"github.com/hireloop/interviewd/pkg/timeslot"
)

func newTestAPI() API {
	mem := repo.NewMemory[Interview](func(i *Interview) *string { return &i.ID })
	return New(mem, logger.NewStub())
}

func day(h, m int) time.Time {
	return time.Date(2026, time.March, 2, h, m, 0, 0, time.UTC)
}

func Test_FindActive(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	_, err := api.Create(ctx, Interview{
		ID:          "int-1",
		JobID:       "job-1",
		CandidateID: "cand-1",
		Status:      StatusScheduled,
		Start:       day(10, 0),
		End:         day(11, 0),
	})
	require.NoError(t, err)

	t.Run("finds scheduled", func(t *testing.T) {
		got, err := api.FindActive(ctx, "cand-1", "job-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "int-1", got.ID)
	})

	t.Run("other job is nil", func(t *testing.T) {
		got, err := api.FindActive(ctx, "cand-1", "job-2")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("cancelled is nil", func(t *testing.T) {
		err := api.Update(ctx, "int-1", func(i *Interview) { i.Status = StatusCancelled })
		require.NoError(t, err)

		got, err := api.FindActive(ctx, "cand-1", "job-1")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func Test_Overlapping(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	seed := [...]Interview{
		{ID: "int-1", CandidateID: "cand-1", Status: StatusScheduled, Start: day(10, 0), End: day(11, 0)},
		{ID: "int-2", CandidateID: "cand-1", Status: StatusCancelled, Start: day(10, 0), End: day(11, 0)},
		{ID: "int-3", CandidateID: "cand-1", Status: StatusConfirmed, Start: day(14, 0), End: day(15, 0)},
		{ID: "int-4", CandidateID: "cand-2", Status: StatusScheduled, Start: day(10, 0), End: day(11, 0)},
	}
	for _, i := range seed {
		_, err := api.Create(ctx, i)
		require.NoError(t, err)
	}

	type args struct {
		candidateID string
		slot        timeslot.Slot
		excludeID   string
	}

	type testcase struct {
		name    string
		args    args
		wantIDs []string
	}

	tests := [...]testcase{
		{
			name: "cancelled does not count",
			args: args{
				candidateID: "cand-1",
				slot:        timeslot.Slot{Start: day(10, 30), End: day(11, 30)},
			},
			wantIDs: []string{"int-1"},
		},
		{
			name: "no overlap",
			args: args{
				candidateID: "cand-1",
				slot:        timeslot.Slot{Start: day(12, 0), End: day(13, 0)},
			},
			wantIDs: nil,
		},
		{
			name: "exclusion skips self",
			args: args{
				candidateID: "cand-1",
				slot:        timeslot.Slot{Start: day(10, 0), End: day(11, 0)},
				excludeID:   "int-1",
			},
			wantIDs: nil,
		},
		{
			name: "spanning both",
			args: args{
				candidateID: "cand-1",
				slot:        timeslot.Slot{Start: day(9, 0), End: day(16, 0)},
			},
			wantIDs: []string{"int-1", "int-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := api.Overlapping(context.Background(), tt.args.candidateID, tt.args.slot, tt.args.excludeID)
			require.NoError(t, err)

			var ids []string
			for _, i := range got {
				ids = append(ids, i.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func Test_CompletePast(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	seed := [...]Interview{
		{ID: "past-scheduled", CandidateID: "c", Status: StatusScheduled, Start: day(8, 0), End: day(9, 0)},
		{ID: "past-confirmed", CandidateID: "c", Status: StatusConfirmed, Start: day(8, 0), End: day(9, 0)},
		{ID: "past-cancelled", CandidateID: "c", Status: StatusCancelled, Start: day(8, 0), End: day(9, 0)},
		{ID: "future", CandidateID: "c", Status: StatusScheduled, Start: day(15, 0), End: day(16, 0)},
	}
	for _, i := range seed {
		_, err := api.Create(ctx, i)
		require.NoError(t, err)
	}

	err := api.CompletePast(ctx, day(12, 0))
	require.NoError(t, err)

	want := map[string]Status{
		"past-scheduled": StatusCompleted,
		"past-confirmed": StatusCompleted,
		"past-cancelled": StatusCancelled,
		"future":         StatusScheduled,
	}
	for id, status := range want {
		got, err := api.Find(ctx, id)
		require.NoError(t, err)
		require.Equal(t, status, got.Status, id)
	}
}

func Test_Find_NotFound(t *testing.T) {
	api := newTestAPI()

	_, err := api.Find(context.Background(), "missing")
	var nferr *faults.NotFoundError
	require.ErrorAs(t, err, &nferr)
}
