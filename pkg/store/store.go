// Package store persists monthly schedules in SQLite.
//
// The CLI is short-lived: every invocation opens the database, does its
// work and exits. WAL mode plus a busy timeout keeps concurrent
// invocations (a cron job racing an interactive session) from tripping
// over each other.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"monthshift/pkg/model"

	_ "modernc.org/sqlite"
)

// Store manages all SQLite operations with WAL mode for concurrent access.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// retryOnContention wraps retryOp from retry.go with the default config.
// All store write operations should use this to handle transient SQLite
// errors (BUSY, LOCKED, IOERR_SHORT_READ) under concurrent access.
func retryOnContention(fn func() error) error {
	return retryOp(defaultRetryConfig, fn)
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schedules (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL UNIQUE,
		anchor       TEXT NOT NULL,
		every_months INTEGER NOT NULL,
		tz           TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_schedules_name ON schedules(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateSchedule inserts a new named schedule and returns it. Names are
// unique; inserting an existing name is an error. The anchor is stored
// with its instant intact (RFC 3339); the zone name is stored separately
// so reads can reassociate it.
func (s *Store) CreateSchedule(name string, anchor time.Time, everyMonths int, tz string) (*model.Schedule, error) {
	sched := model.Schedule{
		ID:          uuid.NewString(),
		Name:        name,
		Anchor:      anchor,
		EveryMonths: everyMonths,
		TZ:          tz,
		Created:     time.Now().UTC(),
	}
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	err := retryOnContention(func() error {
		_, err := s.db.Exec(
			`INSERT INTO schedules (id, name, anchor, every_months, tz, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			sched.ID, sched.Name, sched.Anchor.Format(time.RFC3339Nano),
			sched.EveryMonths, sched.TZ, sched.Created.Format(time.RFC3339Nano),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create schedule %q: %w", name, err)
	}
	return &sched, nil
}

// GetSchedule retrieves a schedule by name.
func (s *Store) GetSchedule(name string) (*model.Schedule, error) {
	row := s.db.QueryRow(
		`SELECT id, name, anchor, every_months, tz, created_at
		 FROM schedules WHERE name = ?`, name,
	)
	sched, err := scanSchedule(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no schedule named %q", name)
	}
	return sched, err
}

// ListSchedules returns all schedules ordered by name.
func (s *Store) ListSchedules() ([]model.Schedule, error) {
	rows, err := s.db.Query(
		`SELECT id, name, anchor, every_months, tz, created_at
		 FROM schedules ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scheds []model.Schedule
	for rows.Next() {
		sched, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		scheds = append(scheds, *sched)
	}
	return scheds, rows.Err()
}

// DeleteSchedule removes a schedule by name. Deleting a name that does
// not exist is an error, so 'mshift rm' can report typos.
func (s *Store) DeleteSchedule(name string) error {
	var affected int64
	err := retryOnContention(func() error {
		res, err := s.db.Exec(`DELETE FROM schedules WHERE name = ?`, name)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete schedule %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("no schedule named %q", name)
	}
	return nil
}

// scanSchedule builds a Schedule from a row scan function, reassociating
// the stored zone name with the anchor so callers see the wall-clock
// fields the schedule was created with.
func scanSchedule(scan func(...interface{}) error) (*model.Schedule, error) {
	var sched model.Schedule
	var anchorStr, createdStr string
	if err := scan(&sched.ID, &sched.Name, &anchorStr, &sched.EveryMonths, &sched.TZ, &createdStr); err != nil {
		return nil, err
	}
	anchor, err := time.Parse(time.RFC3339Nano, anchorStr)
	if err != nil {
		return nil, fmt.Errorf("parse anchor for schedule %s: %w", sched.Name, err)
	}
	sched.Anchor = anchor.In(sched.Zone())
	sched.Created, err = time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for schedule %s: %w", sched.Name, err)
	}
	return &sched, nil
}
