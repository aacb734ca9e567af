package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2026, time.March, 2, h, m, 0, 0, time.UTC)
}

func Test_Slot_Overlaps(t *testing.T) {
	type args struct {
		s     Slot
		other Slot
	}

	type testcase struct {
		name string
		args args
		want bool
	}

	tests := [...]testcase{
		{
			name: "disjoint before",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(8, 0), End: at(9, 0)},
			},
			want: false,
		},
		{
			name: "disjoint after",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(12, 0), End: at(13, 0)},
			},
			want: false,
		},
		{
			name: "other starts inside",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(10, 30), End: at(12, 0)},
			},
			want: true,
		},
		{
			name: "other ends inside",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(9, 0), End: at(10, 30)},
			},
			want: true,
		},
		{
			name: "other encloses s",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(9, 0), End: at(12, 0)},
			},
			want: true,
		},
		{
			name: "s encloses other",
			args: args{
				s:     Slot{Start: at(9, 0), End: at(12, 0)},
				other: Slot{Start: at(10, 0), End: at(11, 0)},
			},
			want: true,
		},
		{
			name: "touching boundaries",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(11, 0), End: at(12, 0)},
			},
			want: true,
		},
		{
			name: "identical",
			args: args{
				s:     Slot{Start: at(10, 0), End: at(11, 0)},
				other: Slot{Start: at(10, 0), End: at(11, 0)},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.args.s.Overlaps(tt.args.other))
			require.Equal(t, tt.want, tt.args.other.Overlaps(tt.args.s))
		})
	}
}

func Test_Intersect(t *testing.T) {
	type args struct {
		a Slot
		b Slot
	}

	type testcase struct {
		name   string
		args   args
		want   Slot
		wantOk bool
	}

	tests := [...]testcase{
		{
			name: "partial overlap",
			args: args{
				a: Slot{Start: at(9, 0), End: at(11, 0), Timezone: "UTC"},
				b: Slot{Start: at(10, 0), End: at(12, 0)},
			},
			want:   Slot{Start: at(10, 0), End: at(11, 0), Timezone: "UTC"},
			wantOk: true,
		},
		{
			name: "b inside a",
			args: args{
				a: Slot{Start: at(9, 0), End: at(12, 0)},
				b: Slot{Start: at(10, 0), End: at(11, 0)},
			},
			want:   Slot{Start: at(10, 0), End: at(11, 0)},
			wantOk: true,
		},
		{
			name: "touching only",
			args: args{
				a: Slot{Start: at(9, 0), End: at(10, 0)},
				b: Slot{Start: at(10, 0), End: at(11, 0)},
			},
			wantOk: false,
		},
		{
			name: "disjoint",
			args: args{
				a: Slot{Start: at(9, 0), End: at(10, 0)},
				b: Slot{Start: at(11, 0), End: at(12, 0)},
			},
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.args.a, tt.args.b)
			require.Equal(t, tt.wantOk, ok)
			if ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_Slot_Contains(t *testing.T) {
	outer := Slot{Start: at(9, 0), End: at(12, 0)}

	require.True(t, outer.Contains(Slot{Start: at(10, 0), End: at(11, 0)}))
	require.True(t, outer.Contains(outer))
	require.False(t, outer.Contains(Slot{Start: at(8, 0), End: at(10, 0)}))
	require.False(t, outer.Contains(Slot{Start: at(11, 0), End: at(13, 0)}))
}

func Test_Slot_Valid(t *testing.T) {
	require.True(t, Slot{Start: at(9, 0), End: at(10, 0)}.Valid())
	require.False(t, Slot{Start: at(10, 0), End: at(10, 0)}.Valid())
	require.False(t, Slot{Start: at(11, 0), End: at(10, 0)}.Valid())
}

func Test_Dedupe(t *testing.T) {
	a := Slot{Start: at(9, 0), End: at(10, 0)}
	b := Slot{Start: at(10, 0), End: at(11, 0)}

	got := Dedupe([]Slot{a, b, a, a, b})
	require.Equal(t, []Slot{a, b}, got)
}

func Test_Sort(t *testing.T) {
	a := Slot{Start: at(9, 0), End: at(10, 0)}
	b := Slot{Start: at(10, 0), End: at(11, 0)}
	c := Slot{Start: at(14, 0), End: at(15, 0)}

	slots := []Slot{c, a, b}
	Sort(slots)
	require.Equal(t, []Slot{a, b, c}, slots)
}
