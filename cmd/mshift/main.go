// Command mshift is calendar-aware month arithmetic for the shell: shift
// dates by whole months without overflowing short months, roll dates to
// month boundaries, and keep named monthly schedules whose occurrences
// clamp correctly (a January 31 schedule falls on February 28, not
// March 3).
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("mshift", version)
		return
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	// Pure arithmetic (no database)
	case "shift":
		os.Exit(a.cmdShift(os.Args[2:]))
	case "rollback":
		os.Exit(a.cmdRollback(os.Args[2:]))

	// Schedule registry
	case "add":
		os.Exit(a.cmdAdd(os.Args[2:]))
	case "list", "ls":
		os.Exit(a.cmdList(os.Args[2:]))
	case "rm":
		os.Exit(a.cmdRm(os.Args[2:]))
	case "next":
		os.Exit(a.cmdNext(os.Args[2:]))

	default:
		fmt.Fprintf(os.Stderr, "mshift: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'mshift --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`mshift — calendar-correct month arithmetic

Adding a month to January 31 should not land in March. mshift clamps
month shifts to the last valid day of the target month and keeps named
monthly schedules anchored so month-end dates stay month-end.

Usage:
  mshift <command> [flags]

Arithmetic:
  shift <date> <months>     Shift a date by whole months, clamped
  rollback <date>           Last day of the previous month
                            (--first: first day of the date's own month;
                             --zero-clock: reset the time of day)

Schedules:
  add <name> <anchor>       Store a monthly schedule (--every N months)
  list                      List stored schedules
  rm <name>                 Remove a schedule
  next <name>               Upcoming occurrences (--count N, --after DATE)

Aliases:
  ls = list

Environment:
  MONTHSHIFT_DB   SQLite database path (default: .monthshift/monthshift.db)
  MONTHSHIFT_TZ   Default IANA zone for parsing dates (default: local)

Dates are accepted as 2006-01-02, 2006-01-02T15:04:05, or RFC 3339.
All commands support --json for machine-readable output.

Exit codes:
  0  success
  1  error
`)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "mshift: "+format+"\n", args...)
	os.Exit(1)
}
