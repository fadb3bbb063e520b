package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
)

// DefaultTimeslots is the template used when no timeslot file exists:
// 40 minute slots from 09:00 to 17:00 with 12:20-13:00 left out for lunch.
var DefaultTimeslots = []booking.Timeslot{
	{StartTime: "T09:00:00.000Z", EndTime: "T09:40:00.000Z"},
	{StartTime: "T09:40:00.000Z", EndTime: "T10:20:00.000Z"},
	{StartTime: "T10:20:00.000Z", EndTime: "T11:00:00.000Z"},
	{StartTime: "T11:00:00.000Z", EndTime: "T11:40:00.000Z"},
	{StartTime: "T11:40:00.000Z", EndTime: "T12:20:00.000Z"},
	{StartTime: "T13:00:00.000Z", EndTime: "T13:40:00.000Z"},
	{StartTime: "T13:40:00.000Z", EndTime: "T14:20:00.000Z"},
	{StartTime: "T14:20:00.000Z", EndTime: "T15:00:00.000Z"},
	{StartTime: "T15:00:00.000Z", EndTime: "T15:40:00.000Z"},
	{StartTime: "T15:40:00.000Z", EndTime: "T16:20:00.000Z"},
	{StartTime: "T16:20:00.000Z", EndTime: "T17:00:00.000Z"},
}

// LoadTimeslots reads the "timeslots" list from a JSON or YAML file. A missing
// file yields DefaultTimeslots.
func LoadTimeslots(path string) ([]booking.Timeslot, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		out := make([]booking.Timeslot, len(DefaultTimeslots))
		copy(out, DefaultTimeslots)
		return out, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read timeslots %s: %w", path, err)
	}

	var slots []booking.Timeslot
	if err := v.UnmarshalKey("timeslots", &slots); err != nil {
		return nil, fmt.Errorf("decode timeslots %s: %w", path, err)
	}

	if err := ValidateTimeslots(slots); err != nil {
		return nil, fmt.Errorf("timeslots %s: %w", path, err)
	}
	return slots, nil
}

// ValidateTimeslots requires exactly booking.SlotsPerDay entries whose start
// and end parse as wall-clock times with start before end.
func ValidateTimeslots(slots []booking.Timeslot) error {
	if len(slots) != booking.SlotsPerDay {
		return fmt.Errorf("expected %d timeslots, got %d", booking.SlotsPerDay, len(slots))
	}

	day := time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC)
	for i, s := range slots {
		start, err := s.StartOn(day)
		if err != nil {
			return fmt.Errorf("timeslot %d: %w", i, err)
		}
		end, err := s.EndOn(day)
		if err != nil {
			return fmt.Errorf("timeslot %d: %w", i, err)
		}
		if !start.Before(end) {
			return fmt.Errorf("timeslot %d: start %s is not before end %s", i, s.StartTime, s.EndTime)
		}
	}
	return nil
}
