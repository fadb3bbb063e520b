package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
)

// Monday 2026-10-19 04:00 UTC.
var mondayEarly = time.Date(2026, 10, 19, 4, 0, 0, 0, time.UTC)

func bookingFields(year, month, day, hour, minute int) Fields {
	return Fields{
		Year:   IntPtr(year),
		Month:  IntPtr(month),
		Day:    IntPtr(day),
		Hour:   IntPtr(hour),
		Minute: IntPtr(minute),
	}
}

func expectMessage(t *testing.T, err error, code, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %q, got nil", message)
	}
	be, ok := httperr.AsBusiness(err)
	if !ok {
		t.Fatalf("expected business error, got %T: %v", err, err)
	}
	if be.Code != code || be.Message != message {
		t.Fatalf("expected %s/%q, got %s/%q", code, message, be.Code, be.Message)
	}
}

func TestCheckMissingInputs_ReportsFirstMissingField(t *testing.T) {
	f := bookingFields(2026, 10, 20, 10, 0)
	f.Month = nil
	f.Hour = nil

	err := CheckMissingInputs(KindBooking, f)
	expectMessage(t, err, CodeMissingParameter, "Request is missing parameter: month")
}

func TestCheckMissingInputs_ZeroIsPresent(t *testing.T) {
	f := bookingFields(2026, 10, 20, 0, 0)
	if err := CheckMissingInputs(KindBooking, f); err != nil {
		t.Fatalf("hour=0 minute=0 must count as supplied, got %v", err)
	}
}

func TestCheckMissingInputs_OnlyRequiredFieldsForKind(t *testing.T) {
	days := Fields{Year: IntPtr(2026), Month: IntPtr(11)}
	if err := CheckMissingInputs(KindDays, days); err != nil {
		t.Fatalf("day listing needs only year and month, got %v", err)
	}

	err := CheckMissingInputs(KindTimeslots, days)
	expectMessage(t, err, CodeMissingParameter, "Request is missing parameter: day")
}

func TestIsInPast_BoundaryIsNotPast(t *testing.T) {
	if IsInPast(mondayEarly, mondayEarly) {
		t.Fatal("an instant equal to now must not be in the past")
	}
	if !IsInPast(mondayEarly.Add(-time.Minute), mondayEarly) {
		t.Fatal("one minute before now must be in the past")
	}
}

func TestValidateBooking_Past(t *testing.T) {
	err := ValidateBooking(bookingFields(2026, 10, 19, 3, 59), mondayEarly)
	expectMessage(t, err, CodeInPast, MsgBookInPast)
}

func TestValidateBooking_UnderflowingFieldsStillCheckedAsInstant(t *testing.T) {
	// Day 0 of October resolves to 30 September, which is in the past.
	err := ValidateBooking(bookingFields(2026, 10, 0, 10, 0), mondayEarly)
	expectMessage(t, err, CodeInPast, MsgBookInPast)
}

func TestValidateBooking_Weekend(t *testing.T) {
	// Saturday 2026-10-24 10:00, otherwise valid.
	err := ValidateBooking(bookingFields(2026, 10, 24, 10, 0), mondayEarly)
	expectMessage(t, err, CodeOutsideTimeframe, MsgBookOutsideTimeframe)

	// Sunday 2026-10-25.
	err = ValidateBooking(bookingFields(2026, 10, 25, 10, 0), mondayEarly)
	expectMessage(t, err, CodeOutsideTimeframe, MsgBookOutsideTimeframe)
}

func TestValidateBooking_BusinessHours(t *testing.T) {
	tests := []struct {
		hour int
		ok   bool
	}{
		{8, false},
		{9, true},
		{17, true},
		{18, false},
	}

	for _, tt := range tests {
		err := ValidateBooking(bookingFields(2026, 10, 21, tt.hour, 0), mondayEarly)
		if tt.ok && err != nil {
			t.Errorf("hour %d: expected valid, got %v", tt.hour, err)
		}
		if !tt.ok {
			if !httperr.IsBusiness(err, CodeOutsideTimeframe) {
				t.Errorf("hour %d: expected outside timeframe, got %v", tt.hour, err)
			}
		}
	}
}

func TestValidateBooking_LeadTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	err := ValidateBooking(bookingFields(2026, 10, 20, 9, 59), now)
	expectMessage(t, err, CodeInsufficientLeadTime, MsgBookWithoutLeadTime)

	if err := ValidateBooking(bookingFields(2026, 10, 20, 10, 0), now); err != nil {
		t.Fatalf("exactly 24 hours ahead must be accepted, got %v", err)
	}
	if err := ValidateBooking(bookingFields(2026, 10, 20, 11, 0), now); err != nil {
		t.Fatalf("more than 24 hours ahead must be accepted, got %v", err)
	}
}

func TestValidateBooking_OrderMissingBeforePast(t *testing.T) {
	f := bookingFields(2020, 1, 1, 10, 0)
	f.Minute = nil

	err := ValidateBooking(f, mondayEarly)
	expectMessage(t, err, CodeMissingParameter, "Request is missing parameter: minute")
}

func TestValidateGetDays(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	err := ValidateGetDays(Fields{Year: IntPtr(2026), Month: IntPtr(9)}, now)
	expectMessage(t, err, CodeInPast, MsgNoTimeslotsInPast)

	if err := ValidateGetDays(Fields{Year: IntPtr(2026), Month: IntPtr(10)}, now); err != nil {
		t.Fatalf("current month must be listable, got %v", err)
	}

	err = ValidateGetDays(Fields{Month: IntPtr(10)}, now)
	expectMessage(t, err, CodeMissingParameter, "Request is missing parameter: year")
}

func TestValidateGetTimeslots(t *testing.T) {
	day := func(d int) Fields {
		return Fields{Year: IntPtr(2026), Month: IntPtr(10), Day: IntPtr(d)}
	}

	// Midnight of the current day has already passed.
	err := ValidateGetTimeslots(day(19), mondayEarly)
	expectMessage(t, err, CodeInPast, MsgNoTimeslotsInPast)

	err = ValidateGetTimeslots(day(24), mondayEarly)
	expectMessage(t, err, CodeOutsideTimeframe, MsgNoTimeslotsOutsideDay)

	if err := ValidateGetTimeslots(day(20), mondayEarly); err != nil {
		t.Fatalf("tuesday must be listable, got %v", err)
	}
}

func TestCanAdvance(t *testing.T) {
	if err := CanAdvance(StageValidating, StageFetching); err != nil {
		t.Fatalf("validating -> fetching: %v", err)
	}
	if err := CanAdvance(StageValidating, StageBooked); err == nil {
		t.Fatal("validating -> booked must be rejected")
	}
	for _, s := range []Stage{StageRejected, StageNoMatch, StageTransportError, StageBooked} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	if StageMatching.Terminal() {
		t.Error("matching is not terminal")
	}
}
