// Package timeslot holds the interval algebra shared by the
// availability resolver, the conflict detector and the booking ledger.
package timeslot

import (
	"fmt"
	"sort"
	"time"
)

// Slot is a transient time range. It is never persisted on its own.
type Slot struct {
	Start    time.Time `json:"start"    bson:"start"`
	End      time.Time `json:"end"      bson:"end"`
	Timezone string    `json:"timezone" bson:"timezone"`
}

func New(start, end time.Time, tz string) Slot {
	return Slot{Start: start, End: end, Timezone: tz}
}

func (s Slot) Valid() bool {
	return s.Start.Before(s.End)
}

func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End) && s.Timezone == other.Timezone
}

func (s Slot) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start.Format(time.RFC3339), s.End.Format(time.RFC3339))
}

// Overlaps checks s against other with boundary containment on either
// side, or full enclosure of other by s.
func (s Slot) Overlaps(other Slot) bool {
	if !other.Start.Before(s.Start) && !other.Start.After(s.End) {
		return true
	}
	if !other.End.Before(s.Start) && !other.End.After(s.End) {
		return true
	}
	return !other.Start.After(s.Start) && !other.End.Before(s.End)
}

// Contains reports whether inner lies entirely within s.
func (s Slot) Contains(inner Slot) bool {
	return !inner.Start.Before(s.Start) && !inner.End.After(s.End)
}

// Intersect returns the common part of a and b. The second value is
// false when the ranges do not share a span of positive length.
func Intersect(a, b Slot) (Slot, bool) {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}

	end := a.End
	if b.End.Before(end) {
		end = b.End
	}

	if !start.Before(end) {
		return Slot{}, false
	}

	return Slot{Start: start, End: end, Timezone: a.Timezone}, true
}

// Sort orders slots ascending by start time in place.
func Sort(slots []Slot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
}

// Dedupe drops slots identical by start, end and timezone,
// keeping the first occurrence. Order is preserved.
func Dedupe(slots []Slot) []Slot {
	out := slots[:0]
	for _, s := range slots {
		dup := false
		for _, kept := range out {
			if kept.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}
