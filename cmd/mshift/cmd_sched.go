// cmd_sched.go implements the schedule registry commands: add, list, rm.
package main

import (
	"flag"
	"fmt"
	"os"

	"monthshift/pkg/shift"
)

func (a *app) cmdAdd(args []string) int {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	every := flags.Int("every", 1, "interval in months between occurrences")
	tz := flags.String("tz", "", "IANA zone for the anchor (default MONTHSHIFT_TZ or local)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: mshift add <name> <anchor> [--every N] [--tz ZONE] [--json]")
		return 1
	}

	loc, err := a.resolveZone(*tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: add: %v\n", err)
		return 1
	}
	anchor, err := parseDate(flags.Arg(1), loc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: add: %v\n", err)
		return 1
	}

	s, err := a.getStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: add: %v\n", err)
		return 1
	}
	sched, err := s.CreateSchedule(flags.Arg(0), anchor, *every, loc.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: add: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(sched)
	} else {
		fmt.Printf("added schedule %q: every %d month(s) from %s\n",
			sched.Name, sched.EveryMonths, formatDate(sched.Anchor))
		for _, t := range shift.Occurrences(sched.Anchor, sched.EveryMonths, 3) {
			fmt.Printf("  %s\n", formatDate(t))
		}
	}
	return 0
}

func (a *app) cmdList(args []string) int {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	s, err := a.getStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: list: %v\n", err)
		return 1
	}
	scheds, err := s.ListSchedules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: list: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(scheds)
		return 0
	}
	if len(scheds) == 0 {
		fmt.Println("no schedules")
		return 0
	}
	for _, sched := range scheds {
		fmt.Printf("%-20s every %d month(s) from %s\n",
			sched.Name, sched.EveryMonths, formatDate(sched.Anchor))
	}
	return 0
}

func (a *app) cmdRm(args []string) int {
	flags := flag.NewFlagSet("rm", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mshift rm <name> [--json]")
		return 1
	}

	s, err := a.getStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mshift: rm: %v\n", err)
		return 1
	}
	name := flags.Arg(0)
	if err := s.DeleteSchedule(name); err != nil {
		fmt.Fprintf(os.Stderr, "mshift: rm: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]string{"removed": name})
	} else {
		fmt.Printf("removed schedule %q\n", name)
	}
	return 0
}
