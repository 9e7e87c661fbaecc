package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"monthshift/pkg/store"
)

// --- envOr tests ---

func TestEnvOr_EnvSet(t *testing.T) {
	t.Setenv("TEST_MSHIFT_ENV", "hello")
	if got := envOr("TEST_MSHIFT_ENV", "default"); got != "hello" {
		t.Fatalf("envOr with set env: got %q, want %q", got, "hello")
	}
}

func TestEnvOr_EnvUnset(t *testing.T) {
	if got := envOr("TEST_MSHIFT_UNSET_KEY_XYZ", "fallback"); got != "fallback" {
		t.Fatalf("envOr with unset env: got %q, want %q", got, "fallback")
	}
}

func TestEnvOr_EmptyEnv(t *testing.T) {
	t.Setenv("TEST_MSHIFT_EMPTY", "")
	if got := envOr("TEST_MSHIFT_EMPTY", "default"); got != "default" {
		t.Fatalf("envOr with empty env: got %q, want %q", got, "default")
	}
}

// --- parseDate tests ---

func TestParseDate_DateOnly(t *testing.T) {
	got, err := parseDate("2010-01-31", time.UTC)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	want := time.Date(2010, time.January, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseDate_DateTime(t *testing.T) {
	got, err := parseDate("2010-01-31T03:04:05", time.UTC)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Hour() != 3 || got.Minute() != 4 || got.Second() != 5 {
		t.Fatalf("clock = %02d:%02d:%02d, want 03:04:05", got.Hour(), got.Minute(), got.Second())
	}
}

func TestParseDate_SpaceSeparator(t *testing.T) {
	got, err := parseDate("2010-01-31 03:04:05", time.UTC)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Day() != 31 || got.Hour() != 3 {
		t.Fatalf("got %v, want Jan 31 03:00", got)
	}
}

func TestParseDate_RFC3339KeepsOffset(t *testing.T) {
	got, err := parseDate("2010-01-31T03:04:05+09:00", time.UTC)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	_, offset := got.Zone()
	if offset != 9*3600 {
		t.Fatalf("offset = %d, want %d", offset, 9*3600)
	}
}

func TestParseDate_UsesZone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	got, err := parseDate("2010-01-31", loc)
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.Location() != loc {
		t.Fatalf("zone = %v, want %v", got.Location(), loc)
	}
}

func TestParseDate_Unrecognized(t *testing.T) {
	if _, err := parseDate("31/01/2010", time.UTC); err == nil {
		t.Fatal("expected error for unrecognized layout")
	}
}

// --- resolveZone tests ---

func TestResolveZone_EmptyUsesDefault(t *testing.T) {
	a := &app{tz: time.UTC}
	loc, err := a.resolveZone("")
	if err != nil || loc != time.UTC {
		t.Fatalf("resolveZone(\"\"): got %v, err=%v", loc, err)
	}
}

func TestResolveZone_Named(t *testing.T) {
	a := &app{tz: time.UTC}
	loc, err := a.resolveZone("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Fatalf("zone = %v, want America/New_York", loc)
	}
}

func TestResolveZone_Unknown(t *testing.T) {
	a := &app{tz: time.UTC}
	if _, err := a.resolveZone("Not/AZone"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

// --- command integration tests ---

func newTestApp(t *testing.T) *app {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return &app{store: s, tz: time.UTC}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestCmdShift_ClampsToFebruary(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdShift([]string{"2010-01-31T03:04:05", "1"}); code != 0 {
			t.Fatalf("cmdShift: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "2010-02-28 03:04:05") {
		t.Fatalf("output should contain the clamped date, got %q", out)
	}
}

func TestCmdShift_NegativeMonths(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdShift([]string{"2012-02-29", "-12"}); code != 0 {
			t.Fatalf("cmdShift: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "2011-02-28") {
		t.Fatalf("output should contain 2011-02-28, got %q", out)
	}
}

func TestCmdShift_JSONReportsClamp(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdShift([]string{"--json", "2010-01-31", "1"}); code != 0 {
			t.Fatalf("cmdShift: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, `"clamped": true`) {
		t.Fatalf("JSON output should report the clamp, got %q", out)
	}
}

func TestCmdShift_BadMonths(t *testing.T) {
	a := newTestApp(t)
	if code := a.cmdShift([]string{"2010-01-31", "one"}); code != 1 {
		t.Fatalf("cmdShift with bad months: exit %d, want 1", code)
	}
}

func TestCmdShift_MissingArgs(t *testing.T) {
	a := newTestApp(t)
	if code := a.cmdShift([]string{"2010-01-31"}); code != 1 {
		t.Fatalf("cmdShift with one arg: exit %d, want 1", code)
	}
}

func TestCmdRollback_Default(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdRollback([]string{"2010-03-03"}); code != 0 {
			t.Fatalf("cmdRollback: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "2010-02-28") {
		t.Fatalf("output should contain 2010-02-28, got %q", out)
	}
}

func TestCmdRollback_First(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdRollback([]string{"--first", "2010-03-03"}); code != 0 {
			t.Fatalf("cmdRollback --first: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "2010-03-01") {
		t.Fatalf("output should contain 2010-03-01, got %q", out)
	}
}

func TestCmdRollback_ZeroClock(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdRollback([]string{"--zero-clock", "2010-03-03T12:44:22"}); code != 0 {
			t.Fatalf("cmdRollback --zero-clock: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "2010-02-28 00:00:00") {
		t.Fatalf("output should contain the zeroed clock, got %q", out)
	}
}

func TestScheduleLifecycle(t *testing.T) {
	a := newTestApp(t)

	out := captureStdout(t, func() {
		if code := a.cmdAdd([]string{"--every", "1", "rent", "2024-01-31"}); code != 0 {
			t.Fatalf("cmdAdd: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, `added schedule "rent"`) {
		t.Fatalf("cmdAdd output: %q", out)
	}
	// The preview shows the anchored series clamping through February.
	if !strings.Contains(out, "2024-02-29") {
		t.Fatalf("cmdAdd preview should contain the leap-February occurrence, got %q", out)
	}

	out = captureStdout(t, func() {
		if code := a.cmdList(nil); code != 0 {
			t.Fatalf("cmdList: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "rent") {
		t.Fatalf("cmdList output should contain rent, got %q", out)
	}

	out = captureStdout(t, func() {
		if code := a.cmdNext([]string{"--count", "2", "--after", "2024-02-01", "rent"}); code != 0 {
			t.Fatalf("cmdNext: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "2024-02-29") || !strings.Contains(out, "2024-03-31") {
		t.Fatalf("cmdNext output should contain the next two occurrences, got %q", out)
	}

	out = captureStdout(t, func() {
		if code := a.cmdRm([]string{"rent"}); code != 0 {
			t.Fatalf("cmdRm: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "removed") {
		t.Fatalf("cmdRm output: %q", out)
	}

	if code := a.cmdRm([]string{"rent"}); code != 1 {
		t.Fatalf("removing a missing schedule: exit %d, want 1", code)
	}
}

func TestCmdAdd_DuplicateName(t *testing.T) {
	a := newTestApp(t)
	captureStdout(t, func() {
		if code := a.cmdAdd([]string{"rent", "2024-01-31"}); code != 0 {
			t.Fatalf("first cmdAdd: exit %d, want 0", code)
		}
	})
	if code := a.cmdAdd([]string{"rent", "2024-02-15"}); code != 1 {
		t.Fatalf("duplicate cmdAdd: exit %d, want 1", code)
	}
}

func TestCmdNext_UnknownSchedule(t *testing.T) {
	a := newTestApp(t)
	if code := a.cmdNext([]string{"nonexistent"}); code != 1 {
		t.Fatalf("cmdNext for missing schedule: exit %d, want 1", code)
	}
}

func TestCmdList_Empty(t *testing.T) {
	a := newTestApp(t)
	out := captureStdout(t, func() {
		if code := a.cmdList(nil); code != 0 {
			t.Fatalf("cmdList: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, "no schedules") {
		t.Fatalf("cmdList on empty store: %q", out)
	}
}

func TestCmdList_JSON(t *testing.T) {
	a := newTestApp(t)
	captureStdout(t, func() { a.cmdAdd([]string{"rent", "2024-01-31"}) })
	out := captureStdout(t, func() {
		if code := a.cmdList([]string{"--json"}); code != 0 {
			t.Fatalf("cmdList --json: exit %d, want 0", code)
		}
	})
	if !strings.Contains(out, `"name": "rent"`) {
		t.Fatalf("JSON list should contain the schedule name, got %q", out)
	}
}
