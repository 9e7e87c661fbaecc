package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"monthshift/pkg/shift"
)

func (a *app) cmdNext(args []string) int {
	flags := flag.NewFlagSet("next", flag.ContinueOnError)
	count := flags.Int("count", 6, "number of occurrences to show")
	after := flags.String("after", "", "reference date (default: now)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mshift next <name> [--count N] [--after DATE] [--json]")
		return 1
	}

	s, err := a.getStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: next: %v\n", err)
		return 1
	}
	sched, err := s.GetSchedule(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: next: %v\n", err)
		return 1
	}

	ref := time.Now().In(sched.Zone())
	if *after != "" {
		ref, err = parseDate(*after, sched.Zone())
		if err != nil {
			fmt.Fprintf(os.Stderr, "mshift: next: %v\n", err)
			return 1
		}
	}

	occ := shift.Upcoming(sched.Anchor, sched.EveryMonths, *count, ref)

	if *jsonOut {
		out := make([]string, len(occ))
		for i, t := range occ {
			out[i] = t.Format(time.RFC3339Nano)
		}
		printJSON(map[string]interface{}{
			"schedule":    sched.Name,
			"after":       ref.Format(time.RFC3339Nano),
			"occurrences": out,
		})
		return 0
	}
	for _, t := range occ {
		fmt.Println(formatDate(t))
	}
	return 0
}
