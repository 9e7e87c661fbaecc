// Package model defines the domain types shared by the store and the CLI.
package model

import (
	"fmt"
	"time"
)

// Schedule is a stored monthly recurrence: a named anchor date advanced
// by a fixed number of months per occurrence. Occurrences are always
// computed from the anchor, never from the previous occurrence, so a
// month-end anchor keeps its day whenever the target month allows it
// (a January 31 anchor bills February 28, then March 31 — clamping in
// February does not erode March).
type Schedule struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Anchor      time.Time `json:"anchor"`
	EveryMonths int       `json:"every_months"`
	TZ          string    `json:"tz"`
	Created     time.Time `json:"created_at"`
}

// Validate checks the fields a schedule needs before it can be stored.
func (s Schedule) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schedule name must not be empty")
	}
	if s.EveryMonths < 1 {
		return fmt.Errorf("schedule interval must be at least 1 month, got %d", s.EveryMonths)
	}
	if s.Anchor.IsZero() {
		return fmt.Errorf("schedule %q has no anchor date", s.Name)
	}
	return nil
}

// Zone resolves the schedule's IANA zone name, falling back to UTC when
// the name is empty or unknown to the local tz database.
func (s Schedule) Zone() *time.Location {
	if s.TZ == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.TZ)
	if err != nil {
		return time.UTC
	}
	return loc
}
