// Package period defines the calendar-relative span type consumed by the
// month-shift engine.
//
// A Period is not a fixed amount of time. Adding one mutates calendar
// fields: one month from January 15 is February 15, whether those are 28,
// 29, 30 or 31 days apart. Contrast time.Duration, which is an exact span
// of seconds and is added by plain offset arithmetic. The two must never
// be conflated — the month-shift operators accept Periods and reject
// Durations outright.
//
// Periods here carry whole integer fields only. Fractional periods (as in
// ISO 8601 "P0.5Y") are out of scope: half a month has no calendar-correct
// meaning for the clamping arithmetic this module exists for.
package period

import (
	"fmt"
	"strings"
)

// Period is a calendar-relative span with independent field components.
// Fields may be negative; a negative period shifts backward in time.
//
// The month-shift engine only accepts Periods whose Days, Hours, Minutes
// and Seconds are all zero; see MonthsOnly.
type Period struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Months returns a Period of n calendar months. n may be negative.
func Months(n int) Period { return Period{Months: n} }

// Years returns a Period of n calendar years. For every operation in this
// module it is equivalent to Months(12 * n); there is no separate year
// code path.
func Years(n int) Period { return Period{Years: n} }

// Negate returns the period with every field sign-flipped.
func (p Period) Negate() Period {
	return Period{
		Years:   -p.Years,
		Months:  -p.Months,
		Days:    -p.Days,
		Hours:   -p.Hours,
		Minutes: -p.Minutes,
		Seconds: -p.Seconds,
	}
}

// TotalMonths collapses the year and month fields into a single month
// count: 12*Years + Months. The day and time fields do not contribute.
func (p Period) TotalMonths() int { return 12*p.Years + p.Months }

// MonthsOnly reports whether the period carries contribution only in its
// year and month fields. The month-shift operators require this; a period
// with day or time contribution mixed in is a usage error, not something
// to silently ignore.
func (p Period) MonthsOnly() bool {
	return p.Days == 0 && p.Hours == 0 && p.Minutes == 0 && p.Seconds == 0
}

// IsZero reports whether every field is zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// String renders the period in ISO 8601 style, e.g. "P1Y2M" or
// "P3DT4H5M6S". Negative fields carry their sign inline ("P-1M").
// The zero period renders as "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	writeField(&b, p.Years, 'Y')
	writeField(&b, p.Months, 'M')
	writeField(&b, p.Days, 'D')
	if p.Hours != 0 || p.Minutes != 0 || p.Seconds != 0 {
		b.WriteByte('T')
		writeField(&b, p.Hours, 'H')
		writeField(&b, p.Minutes, 'M')
		writeField(&b, p.Seconds, 'S')
	}
	return b.String()
}

func writeField(b *strings.Builder, v int, unit byte) {
	if v == 0 {
		return
	}
	fmt.Fprintf(b, "%d%c", v, unit)
}
