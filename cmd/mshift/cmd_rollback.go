package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"monthshift/pkg/shift"
)

func (a *app) cmdRollback(args []string) int {
	flags := flag.NewFlagSet("rollback", flag.ContinueOnError)
	first := flags.Bool("first", false, "land on the first day of the date's own month")
	zeroClock := flags.Bool("zero-clock", false, "reset hour, minute and second to zero")
	tz := flags.String("tz", "", "IANA zone for parsing the date (default MONTHSHIFT_TZ or local)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mshift rollback <date> [--first] [--zero-clock] [--tz ZONE] [--json]")
		return 1
	}

	loc, err := a.resolveZone(*tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: rollback: %v\n", err)
		return 1
	}
	in, err := parseDate(flags.Arg(0), loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: rollback: %v\n", err)
		return 1
	}

	out := shift.Rollback(in, shift.RollbackOptions{ToFirst: *first, ZeroClock: *zeroClock})

	if *jsonOut {
		printJSON(map[string]interface{}{
			"input":  in.Format(time.RFC3339Nano),
			"result": out.Format(time.RFC3339Nano),
			"first":  *first,
		})
	} else {
		fmt.Println(formatDate(out))
	}
	return 0
}
