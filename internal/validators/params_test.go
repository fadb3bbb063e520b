package validators

import (
	"net/url"
	"testing"
	"time"

	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
)

func TestParseFields_Booking(t *testing.T) {
	q := url.Values{
		"year":   {"2026"},
		"month":  {"10"},
		"day":    {"20"},
		"hour":   {"0"},
		"minute": {"0"},
	}

	f, err := ParseFields(q, booking.KindBooking)
	if err != nil {
		t.Fatal(err)
	}
	if *f.Year != 2026 || *f.Month != 10 || *f.Day != 20 {
		t.Fatalf("unexpected fields %+v", f)
	}
	if f.Hour == nil || *f.Hour != 0 || f.Minute == nil || *f.Minute != 0 {
		t.Fatal("zero values must be kept as present")
	}
}

func TestParseFields_MissingStaysNil(t *testing.T) {
	f, err := ParseFields(url.Values{"year": {"2026"}, "month": {""}}, booking.KindDays)
	if err != nil {
		t.Fatal(err)
	}
	if f.Year == nil || f.Month != nil {
		t.Fatalf("unexpected fields %+v", f)
	}
}

func TestParseFields_IgnoresFieldsOutsideKind(t *testing.T) {
	q := url.Values{"year": {"2026"}, "month": {"10"}, "hour": {"abc"}}

	f, err := ParseFields(q, booking.KindDays)
	if err != nil {
		t.Fatalf("hour is not read for day listings, got %v", err)
	}
	if f.Hour != nil {
		t.Fatal("hour must not be set")
	}
}

func TestParseFields_NonInteger(t *testing.T) {
	q := url.Values{"year": {"2026"}, "month": {"ten"}, "day": {"1"}}

	_, err := ParseFields(q, booking.KindTimeslots)
	be, ok := httperr.AsBusiness(err)
	if !ok || be.Code != booking.CodeInvalidParameter || be.Message != "Request has invalid parameter: month" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseAnchor(t *testing.T) {
	got, err := ParseAnchor("2026-10-19")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected anchor %s", got)
	}

	if got, err := ParseAnchor(""); err != nil || !got.IsZero() {
		t.Fatalf("empty anchor should be zero, got %s, %v", got, err)
	}
	if _, err := ParseAnchor("19/10/2026"); !httperr.IsBusiness(err, booking.CodeInvalidParameter) {
		t.Fatalf("expected invalid parameter, got %v", err)
	}
}
