// Package shift implements calendar-correct month and year arithmetic on
// time.Time values.
//
// Naive month addition overflows months of unequal length: January 31
// plus one month lands on March 3, because the calendar normalizes the
// nonexistent February 31 forward. This package instead clamps such
// results to the last day of the intended month, so January 31 plus one
// month is February 28 (or 29 in a leap year).
//
// Two rules govern the arithmetic:
//
//  1. Field arithmetic happens on the wall clock, not the instant. The
//     input's calendar fields are reinterpreted in UTC, shifted, then
//     handed back to the original zone, so a daylight-saving transition
//     between the two dates cannot corrupt the day or clock fields.
//  2. Overflow is detected by day comparison: when the result's day of
//     month is smaller than the input's, the addition rolled into the
//     following month and is rolled back to the last day of the intended
//     one. The predicate holds for negative shifts too — rollover always
//     shrinks the day field, whichever direction the shift went.
//
// All functions return new values; inputs are never modified.
package shift

import "time"

// ShiftMonths returns t moved by the given number of calendar months,
// clamping to the last day of the target month when t's day of month does
// not exist there. The result keeps t's time of day and time zone.
// months may be negative; zero returns a date equal to t.
func ShiftMonths(t time.Time, months int) time.Time {
	u, loc := toNaiveUTC(t)
	y, m, d := u.Date()
	hh, mm, ss := u.Clock()
	shifted := time.Date(y, time.Month(int(m)+months), d, hh, mm, ss, u.Nanosecond(), time.UTC)
	out := fromNaiveUTC(shifted, loc)
	// time.Date normalizes an out-of-range day forward into the next
	// month (February 31 becomes March 3), so a day smaller than the
	// input's day is the overflow signal.
	if out.Day() < d {
		out = Rollback(out, RollbackOptions{})
	}
	return out
}

// ShiftEach applies ShiftMonths element-wise, recycling the shorter slice
// against the longer: a single delta can be applied to many dates, one
// date to many deltas, or equal-length slices pairwise. Each element
// clamps independently. If either slice is empty the result is empty.
func ShiftEach(dates []time.Time, deltas []int) []time.Time {
	if len(dates) == 0 || len(deltas) == 0 {
		return []time.Time{}
	}
	n := len(dates)
	if len(deltas) > n {
		n = len(deltas)
	}
	out := make([]time.Time, n)
	for i := range out {
		out[i] = ShiftMonths(dates[i%len(dates)], deltas[i%len(deltas)])
	}
	return out
}

// Occurrences returns the first n dates of the monthly series anchored at
// anchor: the anchor itself, then the anchor shifted by every, 2*every,
// ... months. Every element is computed from the anchor, never from its
// predecessor, so a January 31 anchor yields February 28 and then
// March 31 — clamping in one month does not erode later ones.
func Occurrences(anchor time.Time, every, n int) []time.Time {
	if n <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, n)
	for i := range out {
		out[i] = ShiftMonths(anchor, i*every)
	}
	return out
}

// Upcoming returns the first n dates of the anchored series (see
// Occurrences) that do not precede after. every must be at least one
// month; otherwise the result is empty.
func Upcoming(anchor time.Time, every, n int, after time.Time) []time.Time {
	if n <= 0 || every < 1 {
		return []time.Time{}
	}
	out := make([]time.Time, 0, n)
	for i := 0; len(out) < n; i++ {
		t := ShiftMonths(anchor, i*every)
		if t.Before(after) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// toNaiveUTC reinterprets t's wall-clock fields as UTC, discarding the
// zone offset without converting the instant. It returns the original
// zone so fromNaiveUTC can restore it.
func toNaiveUTC(t time.Time) (time.Time, *time.Location) {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC), t.Location()
}

// fromNaiveUTC is the inverse of toNaiveUTC: it reattaches loc to u's
// wall-clock fields without shifting them by a zone offset.
func fromNaiveUTC(u time.Time, loc *time.Location) time.Time {
	y, m, d := u.Date()
	hh, mm, ss := u.Clock()
	return time.Date(y, m, d, hh, mm, ss, u.Nanosecond(), loc)
}
