package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hireloop/interviewd/pkg/timeslot"
)

func Test_Engine_SuggestTimes(t *testing.T) {
	ctx := context.Background()

	t.Run("walks the window on the half hour", func(t *testing.T) {
		f := newFixture(t)
		f.declareWindow(t, mon(9, 0), mon(10, 30))

		got, err := f.engine.SuggestTimes(ctx, testCandidateID, testRecruiterID, 30*time.Minute, "UTC", 0)
		require.NoError(t, err)
		require.Equal(t, []timeslot.Slot{
			{Start: mon(9, 0), End: mon(9, 30), Timezone: "UTC"},
			{Start: mon(9, 30), End: mon(10, 0), Timezone: "UTC"},
			{Start: mon(10, 0), End: mon(10, 30), Timezone: "UTC"},
		}, got)
	})

	t.Run("caps the list", func(t *testing.T) {
		f := newFixture(t)
		f.declareWindow(t, mon(9, 0), mon(18, 0))

		got, err := f.engine.SuggestTimes(ctx, testCandidateID, testRecruiterID, 30*time.Minute, "UTC", 0)
		require.NoError(t, err)
		require.Len(t, got, 10)
		require.Equal(t, mon(9, 0), got[0].Start)
		require.Equal(t, mon(13, 30), got[9].Start)
	})

	t.Run("skips starts that are not in the future", func(t *testing.T) {
		f := newFixtureAt(t, mon(10, 0))
		f.declareWindow(t, mon(9, 0), mon(12, 0))

		got, err := f.engine.SuggestTimes(ctx, testCandidateID, testRecruiterID, 30*time.Minute, "UTC", 0)
		require.NoError(t, err)
		require.Equal(t, []timeslot.Slot{
			{Start: mon(10, 30), End: mon(11, 0), Timezone: "UTC"},
			{Start: mon(11, 0), End: mon(11, 30), Timezone: "UTC"},
			{Start: mon(11, 30), End: mon(12, 0), Timezone: "UTC"},
		}, got)
	})

	t.Run("respects the lookahead horizon", func(t *testing.T) {
		f := newFixture(t)

		farOut := mon(9, 0).AddDate(0, 0, 20)
		f.declareWindow(t, farOut, farOut.Add(3*time.Hour))

		got, err := f.engine.SuggestTimes(ctx, testCandidateID, testRecruiterID, 30*time.Minute, "UTC", 0)
		require.NoError(t, err)
		require.Empty(t, got)

		// a wider horizon reaches it
		got, err = f.engine.SuggestTimes(ctx, testCandidateID, testRecruiterID, 30*time.Minute, "UTC", 30)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		require.Equal(t, farOut, got[0].Start)
	})

	t.Run("window shorter than the duration", func(t *testing.T) {
		f := newFixture(t)
		f.declareWindow(t, mon(9, 0), mon(9, 20))

		got, err := f.engine.SuggestTimes(ctx, testCandidateID, testRecruiterID, 30*time.Minute, "UTC", 0)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
