// op.go implements the operator surface over the engine: a symmetric
// month-shift "plus" and its subtraction variant, dispatching on which
// operand holds the period. Wrapping both sides in Operand keeps the
// dispatch a pattern match over a small sum type instead of a runtime
// type assertion that fails opaquely.
package shift

import (
	"fmt"
	"time"

	"monthshift/pkg/period"
)

// UsageError reports a misuse of the month-shift operators: a period
// carrying day or time fields, an exact duration where a period is
// required, or an operand pair without exactly one period side. The whole
// call fails; no partial results are produced.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string { return "monthshift: " + e.Reason }

func usageErrf(format string, args ...interface{}) error {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}

type operandKind int

const (
	operandDates operandKind = iota
	operandPeriods
	operandDuration
)

// Operand is one side of a month-shift expression: a date (or dates), a
// period (or periods), or an exact duration. Build one with Date, Dates,
// Span, Spans or Exact.
type Operand struct {
	kind    operandKind
	dates   []time.Time
	periods []period.Period
	dur     time.Duration
	scalar  bool
}

// Date wraps a single date-time operand.
func Date(t time.Time) Operand {
	return Operand{kind: operandDates, dates: []time.Time{t}, scalar: true}
}

// Dates wraps a slice of date-time operands.
func Dates(ts []time.Time) Operand {
	return Operand{kind: operandDates, dates: ts}
}

// Span wraps a single period operand.
func Span(p period.Period) Operand {
	return Operand{kind: operandPeriods, periods: []period.Period{p}, scalar: true}
}

// Spans wraps a slice of period operands, recycled element-wise against
// the dates on the other side.
func Spans(ps []period.Period) Operand {
	return Operand{kind: operandPeriods, periods: ps}
}

// Exact wraps an exact duration. The month-shift operators always reject
// it: a month is not a fixed number of seconds.
func Exact(d time.Duration) Operand {
	return Operand{kind: operandDuration, dur: d, scalar: true}
}

// Result is the outcome of Add or Sub. It remembers whether both operands
// were scalar so callers can unwrap a single time.Time.
type Result struct {
	dates  []time.Time
	scalar bool
}

// Times returns the result elements. Empty input yields an empty,
// non-nil slice.
func (r Result) Times() []time.Time { return r.dates }

// Scalar reports whether the result represents a single date (both
// operands were built with Date and Span).
func (r Result) Scalar() bool { return r.scalar }

// Time returns the single element of a scalar result, or the zero time
// when the result is not scalar.
func (r Result) Time() time.Time {
	if !r.scalar || len(r.dates) == 0 {
		return time.Time{}
	}
	return r.dates[0]
}

// Add evaluates the symmetric month-shift operator: exactly one operand
// must be a month/year period and the other a date or dates; operand
// order is irrelevant. Periods with day, hour, minute or second
// contribution are rejected with *UsageError, as are exact durations and
// operand pairs without exactly one period side.
func Add(a, b Operand) (Result, error) {
	dates, periods, err := splitOperands(a, b)
	if err != nil {
		return Result{}, err
	}
	deltas, err := monthDeltas(periods.periods)
	if err != nil {
		return Result{}, err
	}
	return Result{
		dates:  ShiftEach(dates.dates, deltas),
		scalar: dates.scalar && periods.scalar,
	}, nil
}

// Sub evaluates the subtraction variant: the dates shifted by the negated
// period. Unlike Add it is not symmetric — subtracting a date from a
// period has no meaning — so the date side must be the left operand.
func Sub(a, b Operand) (Result, error) {
	if a.kind != operandDates || b.kind != operandPeriods {
		return Result{}, usageErrf("month subtraction needs a date on the left and a month/year period on the right")
	}
	neg := make([]period.Period, len(b.periods))
	for i, p := range b.periods {
		neg[i] = p.Negate()
	}
	b.periods = neg
	return Add(a, b)
}

// splitOperands identifies the date side and the period side of an
// operand pair, rejecting every other combination.
func splitOperands(a, b Operand) (dates, periods Operand, err error) {
	if a.kind == operandDuration || b.kind == operandDuration {
		return Operand{}, Operand{}, usageErrf("exact durations cannot be added by calendar month; use a month/year period")
	}
	switch {
	case a.kind == operandDates && b.kind == operandPeriods:
		return a, b, nil
	case a.kind == operandPeriods && b.kind == operandDates:
		return b, a, nil
	case a.kind == operandDates:
		return Operand{}, Operand{}, usageErrf("exactly one operand must be a month/year period, got two dates")
	default:
		return Operand{}, Operand{}, usageErrf("exactly one operand must be a date, got two periods")
	}
}

// monthDeltas validates each period and collapses it to a month count.
func monthDeltas(ps []period.Period) ([]int, error) {
	deltas := make([]int, len(ps))
	for i, p := range ps {
		if !p.MonthsOnly() {
			return nil, usageErrf("month-shift operators only accept month/year periods, got %s", p)
		}
		deltas[i] = p.TotalMonths()
	}
	return deltas, nil
}
