package booking

import "time"

// Event summaries used to tag calendar entries. A "timeslot" event is open,
// an "appointment" event has been claimed.
const (
	SummaryTimeslot    = "timeslot"
	SummaryAppointment = "appointment"
)

// SlotsPerDay is the number of timeslots offered on every business day.
const SlotsPerDay = 11

// WeekdayRecurrence repeats a seeded timeslot Monday through Friday.
const WeekdayRecurrence = "RRULE:FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR"

// Timeslot is one of the fixed daily intervals that can become an appointment.
// StartTime and EndTime are either RFC 3339 timestamps (live calendar events)
// or wall-clock times such as "09:00" (the static template).
type Timeslot struct {
	StartTime string `json:"startTime" mapstructure:"startTime"`
	EndTime   string `json:"endTime" mapstructure:"endTime"`
	ID        string `json:"id,omitempty" mapstructure:"id"`
}

// CalendarEvent is the subset of a calendar entry this service reads.
type CalendarEvent struct {
	ID      string
	Summary string
	Start   string
	End     string
}

type DayAvailability struct {
	Day          int  `json:"day"`
	HasTimeSlots bool `json:"hasTimeSlots"`
}

type BookingResult struct {
	EventID   string
	StartTime string
	EndTime   string
	Stage     Stage
}

// Fields carries the raw date parts of a request. A nil field was not
// supplied, which keeps zero (midnight, minute 0) distinguishable from missing.
type Fields struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
}

// Kind selects which fields a request needs and how precisely its instant is built.
type Kind int

const (
	KindDays Kind = iota
	KindTimeslots
	KindBooking
)

// Instant builds the UTC instant a request refers to, at the granularity of
// its kind. Day listings resolve to the end of the month, timeslot listings to
// midnight of the day, bookings to the exact minute. Callers must check for
// missing fields first.
func (f Fields) Instant(kind Kind) time.Time {
	switch kind {
	case KindDays:
		return time.Date(*f.Year, time.Month(*f.Month)+1, 1, 0, 0, 0, 0, time.UTC)
	case KindTimeslots:
		return time.Date(*f.Year, time.Month(*f.Month), *f.Day, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(*f.Year, time.Month(*f.Month), *f.Day, *f.Hour, *f.Minute, 0, 0, time.UTC)
	}
}

// IntPtr is a small helper for building Fields.
func IntPtr(v int) *int {
	return &v
}
