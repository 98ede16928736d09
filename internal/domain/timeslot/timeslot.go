// Package timeslot holds the wall-clock arithmetic used by the reservation engine.
// Windows are half-open: [start, end).
package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"court-reservation/internal/pkg/errs"
)

var (
	ErrInvalidClockFormat = errs.NewKind(errs.KindInvalidTimeWindow, "time must use 24-hour HH:MM format")
	ErrInvalidWindow      = errs.NewKind(errs.KindInvalidTimeWindow, "start time must be before end time")
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ClockTime is a time of day in minutes since midnight.
type ClockTime int

func ParseClock(s string) (ClockTime, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errs.Wrapf(ErrInvalidClockFormat, "parse %q", s)
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return ClockTime(h*60 + mm), nil
}

func (c ClockTime) Minutes() int {
	return int(c)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

type Window struct {
	start ClockTime
	end   ClockTime
}

func NewWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	if s >= e {
		return Window{}, errs.Wrapf(ErrInvalidWindow, "%s-%s", start, end)
	}
	return Window{start: s, end: e}, nil
}

func (w Window) Start() ClockTime { return w.start }
func (w Window) End() ClockTime   { return w.end }

// DurationMinutes is end - start.
func (w Window) DurationMinutes() int {
	return int(w.end - w.start)
}

// Overlaps uses half-open semantics, so back-to-back windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start < other.end && other.start < w.end
}

func (w Window) String() string {
	return w.start.String() + "-" + w.end.String()
}

// DayOf returns the calendar date of t (as seen in t's location) at UTC midnight.
// Every booking date in the system is normalised this way before comparison.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return DayOf(t), nil
}

func FormatDate(t time.Time) string {
	return DayOf(t).Format(time.DateOnly)
}
