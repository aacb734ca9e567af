package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `bson:"_id,omitempty"`
	Owner string `bson:"owner"`
	N     int    `bson:"n"`
}

func newRecords() *Memory[record] {
	return NewMemory[record](func(r *record) *string { return &r.ID })
}

func Test_Memory_Insert(t *testing.T) {
	ctx := context.Background()
	m := newRecords()

	t.Run("generates an id", func(t *testing.T) {
		id, err := m.Insert(ctx, record{Owner: "a"})
		require.NoError(t, err)
		require.NotEmpty(t, id)
	})

	t.Run("keeps a provided id", func(t *testing.T) {
		id, err := m.Insert(ctx, record{ID: "fixed", Owner: "a"})
		require.NoError(t, err)
		require.Equal(t, "fixed", id)
	})
}

func Test_Memory_Select(t *testing.T) {
	ctx := context.Background()
	m := newRecords()

	seed := [...]record{
		{ID: "r1", Owner: "a", N: 1},
		{ID: "r2", Owner: "a", N: 2},
		{ID: "r3", Owner: "b", N: 3},
	}
	for _, r := range seed {
		_, err := m.Insert(ctx, r)
		require.NoError(t, err)
	}

	type testcase struct {
		name    string
		filters []Filter
		wantIDs []string
	}

	tests := [...]testcase{
		{
			name:    "by id",
			filters: []Filter{ByID("r2")},
			wantIDs: []string{"r2"},
		},
		{
			name:    "by field",
			filters: []Filter{ByField("owner", "a")},
			wantIDs: []string{"r1", "r2"},
		},
		{
			name:    "field miss",
			filters: []Filter{ByField("owner", "c")},
			wantIDs: nil,
		},
		{
			name: "predicate",
			filters: []Filter{
				Where(func(r record) bool { return r.N > 1 }),
			},
			wantIDs: []string{"r2", "r3"},
		},
		{
			name: "combined with exclusion",
			filters: []Filter{
				ByField("owner", "a"),
				Exclude("r1"),
			},
			wantIDs: []string{"r2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Select(ctx, tt.filters...)
			require.NoError(t, err)

			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			require.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func Test_Memory_Update(t *testing.T) {
	ctx := context.Background()
	m := newRecords()

	for _, r := range []record{{ID: "r1", Owner: "a"}, {ID: "r2", Owner: "b"}} {
		_, err := m.Insert(ctx, r)
		require.NoError(t, err)
	}

	err := m.Update(ctx, func(r *record) { r.N = 42 }, ByField("owner", "a"))
	require.NoError(t, err)

	got, err := m.Select(ctx, ByID("r1"))
	require.NoError(t, err)
	require.Equal(t, 42, got[0].N)

	got, err = m.Select(ctx, ByID("r2"))
	require.NoError(t, err)
	require.Zero(t, got[0].N)
}

func Test_Memory_Delete(t *testing.T) {
	ctx := context.Background()
	m := newRecords()

	_, err := m.Insert(ctx, record{ID: "r1"})
	require.NoError(t, err)

	ok, err := m.Delete(ctx, "r1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Delete(ctx, "r1")
	require.NoError(t, err)
	require.False(t, ok)
}
