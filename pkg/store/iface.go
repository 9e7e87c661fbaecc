// iface.go defines the StoreInterface for dependency injection and testing.
//
// The concrete *Store type satisfies this interface. Code that depends on
// the store (e.g., the cmd layer) can accept StoreInterface instead of
// *Store, enabling mock injection in tests.
package store

import (
	"time"

	"monthshift/pkg/model"
)

// StoreInterface defines the full set of store operations.
// The concrete *Store type implements this interface.
type StoreInterface interface {
	// Close closes the database connection.
	Close() error

	// CreateSchedule inserts a new named schedule. Names are unique.
	CreateSchedule(name string, anchor time.Time, everyMonths int, tz string) (*model.Schedule, error)

	// GetSchedule retrieves a schedule by name.
	GetSchedule(name string) (*model.Schedule, error)

	// ListSchedules returns all schedules ordered by name.
	ListSchedules() ([]model.Schedule, error)

	// DeleteSchedule removes a schedule by name; missing names are an error.
	DeleteSchedule(name string) error
}
