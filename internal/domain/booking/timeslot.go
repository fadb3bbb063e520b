package booking

import (
	"fmt"
	"strings"
	"time"
)

// wall-clock layouts accepted for template timeslots; a leading "T" is
// stripped first so "T09:00:00.000Z" is accepted too.
var clockLayouts = []string{
	"15:04:05Z07:00",
	"15:04:05",
	"15:04",
}

// ParseInstant parses a calendar dateTime (RFC 3339) or an all-day date and
// returns it in UTC.
func ParseInstant(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized instant %q", value)
}

// ParseClock parses a wall-clock slot time and returns the matching instant on
// day (UTC). Full RFC 3339 values are returned as is.
func ParseClock(value string, day time.Time) (time.Time, error) {
	v := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}

	v = strings.TrimPrefix(v, "T")
	day = day.UTC()
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), t.Second(), 0,
			t.Location(),
		).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized slot time %q", value)
}

// StartOn resolves the slot's start to an instant on the given day.
func (s Timeslot) StartOn(day time.Time) (time.Time, error) {
	return ParseClock(s.StartTime, day)
}

func (s Timeslot) EndOn(day time.Time) (time.Time, error) {
	return ParseClock(s.EndTime, day)
}

// FindTimeslot returns the first slot whose start equals the requested minute
// exactly. A request falling inside a slot but not on its start does not match.
func FindTimeslot(
	slots []Timeslot,
	year, month, day, hour, minute int,
) (Timeslot, bool) {
	target := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)

	for _, s := range slots {
		start, err := s.StartOn(target)
		if err != nil {
			continue
		}
		if start.Equal(target) {
			return s, true
		}
	}
	return Timeslot{}, false
}
