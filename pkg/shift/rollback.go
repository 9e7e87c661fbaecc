package shift

import "time"

// RollbackOptions selects which month boundary Rollback lands on and what
// happens to the time of day. The zero value is the default behavior:
// last day of the previous month, clock preserved.
type RollbackOptions struct {
	// ToFirst lands on the first day of the input's own month instead
	// of the last day of the month before it.
	ToFirst bool

	// ZeroClock resets hour, minute, second and nanosecond to zero.
	ZeroClock bool
}

// Rollback forces t onto a month boundary. With the zero options it
// returns the last day of the month preceding t's month; with ToFirst it
// returns the first day of t's own month. The clock fields carry over
// unless ZeroClock is set. The zone is preserved either way.
func Rollback(t time.Time, o RollbackOptions) time.Time {
	hh, mm, ss, ns := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()
	if o.ZeroClock {
		hh, mm, ss, ns = 0, 0, 0, 0
	}
	first := time.Date(t.Year(), t.Month(), 1, hh, mm, ss, ns, t.Location())
	if o.ToFirst {
		return first
	}
	// Day 1 minus one calendar day always crosses the month boundary,
	// landing on the last day of the previous month whatever its length.
	return first.AddDate(0, 0, -1)
}

// RollbackEach applies Rollback element-wise with the same options for
// every element. An empty input returns an empty result.
func RollbackEach(dates []time.Time, o RollbackOptions) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		out[i] = Rollback(d, o)
	}
	return out
}
