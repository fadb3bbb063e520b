package booking

import (
	"time"

	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
)

// ===============================
// Error codes / messages
// ===============================

const (
	CodeMissingParameter     = "missing_parameter"
	CodeInvalidParameter     = "invalid_parameter"
	CodeInPast               = "in_past"
	CodeOutsideTimeframe     = "outside_timeframe"
	CodeInsufficientLeadTime = "insufficient_lead_time"
	CodeInvalidTimeslot      = "invalid_timeslot"
)

const (
	MsgBookInPast            = "Cannot book time in the past"
	MsgBookOutsideTimeframe  = "Cannot book outside bookable timeframe"
	MsgBookWithoutLeadTime   = "Cannot book with less than 24 hours in advance"
	MsgNoTimeslotsInPast     = "No timeslots are available in the past"
	MsgNoTimeslotsOutsideDay = "No timeslots exist outside bookable timeframe"
	MsgInvalidTimeslot       = "Invalid time slot"
)

// Bookable window, UTC.
const (
	OpeningHour = 9
	ClosingHour = 17
	LeadTime    = 24 * time.Hour
)

// ===============================
// Rules
// ===============================

// CheckMissingInputs reports the first required field that was not supplied,
// in year, month, day, hour, minute order.
func CheckMissingInputs(kind Kind, f Fields) error {
	required := []struct {
		name  string
		value *int
	}{
		{"year", f.Year},
		{"month", f.Month},
		{"day", f.Day},
		{"hour", f.Hour},
		{"minute", f.Minute},
	}

	n := 5
	switch kind {
	case KindDays:
		n = 2
	case KindTimeslots:
		n = 3
	}

	for _, r := range required[:n] {
		if r.value == nil {
			return httperr.ErrBusiness(
				CodeMissingParameter,
				"Request is missing parameter: "+r.name,
			)
		}
	}
	return nil
}

// IsInPast is strict: an instant equal to now is not in the past.
func IsInPast(at, now time.Time) bool {
	return at.Before(now)
}

// IsInBookableTimeframe rejects weekends and, when withHour is set, any UTC
// hour outside [OpeningHour, ClosingHour].
func IsInBookableTimeframe(at time.Time, withHour bool) bool {
	at = at.UTC()

	switch at.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	if withHour {
		h := at.Hour()
		if h < OpeningHour || h > ClosingHour {
			return false
		}
	}
	return true
}

// Is24HoursInAdvance accepts instants at or after now + LeadTime.
func Is24HoursInAdvance(at, now time.Time) bool {
	return !at.Before(now.Add(LeadTime))
}

// ===============================
// Composites
// ===============================

func ValidateBooking(f Fields, now time.Time) error {
	if err := CheckMissingInputs(KindBooking, f); err != nil {
		return err
	}

	at := f.Instant(KindBooking)
	if IsInPast(at, now) {
		return httperr.ErrBusiness(CodeInPast, MsgBookInPast)
	}
	if !IsInBookableTimeframe(at, true) {
		return httperr.ErrBusiness(CodeOutsideTimeframe, MsgBookOutsideTimeframe)
	}
	if !Is24HoursInAdvance(at, now) {
		return httperr.ErrBusiness(CodeInsufficientLeadTime, MsgBookWithoutLeadTime)
	}
	return nil
}

func ValidateGetTimeslots(f Fields, now time.Time) error {
	if err := CheckMissingInputs(KindTimeslots, f); err != nil {
		return err
	}

	at := f.Instant(KindTimeslots)
	if IsInPast(at, now) {
		return httperr.ErrBusiness(CodeInPast, MsgNoTimeslotsInPast)
	}
	if !IsInBookableTimeframe(at, false) {
		return httperr.ErrBusiness(CodeOutsideTimeframe, MsgNoTimeslotsOutsideDay)
	}
	return nil
}

// ValidateGetDays only rejects months that have fully elapsed.
func ValidateGetDays(f Fields, now time.Time) error {
	if err := CheckMissingInputs(KindDays, f); err != nil {
		return err
	}

	if IsInPast(f.Instant(KindDays), now) {
		return httperr.ErrBusiness(CodeInPast, MsgNoTimeslotsInPast)
	}
	return nil
}
