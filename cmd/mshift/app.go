package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"monthshift/pkg/store"
)

const (
	defaultDir = ".monthshift"
	defaultDB  = ".monthshift/monthshift.db"
)

// app holds shared state for all CLI subcommands. The database is opened
// lazily because shift and rollback are pure computations that never
// touch it.
type app struct {
	store *store.Store
	tz    *time.Location // default zone for parsing, from MONTHSHIFT_TZ
}

// newApp resolves the default parsing zone. MONTHSHIFT_TZ must name a
// zone the tz database knows; an unset variable means the local zone.
func newApp() (*app, error) {
	name := os.Getenv("MONTHSHIFT_TZ")
	if name == "" {
		return &app{tz: time.Local}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("MONTHSHIFT_TZ=%q: %w", name, err)
	}
	return &app{tz: loc}, nil
}

// Close releases the database connection, if one was opened.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// getStore opens the database on first use. Creates the .monthshift/
// directory if using the default DB path.
func (a *app) getStore() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	dbPath := envOr("MONTHSHIFT_DB", defaultDB)
	if dbPath == defaultDB {
		if err := os.MkdirAll(defaultDir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create %s: %w", defaultDir, err)
		}
	}
	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", dbPath, err)
	}
	a.store = s
	return s, nil
}

// resolveZone returns the zone from the flag (if non-empty), falling back
// to the app default from MONTHSHIFT_TZ.
func (a *app) resolveZone(flagVal string) (*time.Location, error) {
	if flagVal == "" {
		return a.tz, nil
	}
	loc, err := time.LoadLocation(flagVal)
	if err != nil {
		return nil, fmt.Errorf("unknown zone %q: %w", flagVal, err)
	}
	return loc, nil
}

// dateLayouts are the accepted input formats, tried in order. RFC 3339
// inputs carry their own offset; the others take the resolved zone.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses s in loc, trying each accepted layout.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (try 2006-01-02 or RFC 3339)", s)
}

// formatDate renders a result date for human output.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 -07:00")
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
