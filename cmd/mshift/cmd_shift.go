package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"monthshift/pkg/period"
	"monthshift/pkg/shift"
)

func (a *app) cmdShift(args []string) int {
	flags := flag.NewFlagSet("shift", flag.ContinueOnError)
	tz := flags.String("tz", "", "IANA zone for parsing the date (default MONTHSHIFT_TZ or local)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: mshift shift <date> <months> [--tz ZONE] [--json]")
		return 1
	}

	loc, err := a.resolveZone(*tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: shift: %v\n", err)
		return 1
	}
	in, err := parseDate(flags.Arg(0), loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: shift: %v\n", err)
		return 1
	}
	months, err := strconv.Atoi(flags.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: shift: months must be an integer, got %q\n", flags.Arg(1))
		return 1
	}

	res, err := shift.Add(shift.Date(in), shift.Span(period.Months(months)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: shift: %v\n", err)
		return 1
	}
	out := res.Time()

	if *jsonOut {
		printJSON(map[string]interface{}{
			"input":   in.Format(time.RFC3339Nano),
			"months":  months,
			"result":  out.Format(time.RFC3339Nano),
			"clamped": out.Day() != in.Day(),
		})
	} else {
		fmt.Println(formatDate(out))
	}
	return 0
}
