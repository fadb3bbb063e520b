package validators

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
)

var fieldNames = []string{"year", "month", "day", "hour", "minute"}

// ParseFields reads the date parts a request kind uses from the query string.
// Absent or empty values stay nil so the domain rules can report them as
// missing; anything that is not an integer is rejected here.
func ParseFields(q url.Values, kind booking.Kind) (booking.Fields, error) {
	n := 5
	switch kind {
	case booking.KindDays:
		n = 2
	case booking.KindTimeslots:
		n = 3
	}

	var f booking.Fields
	targets := []**int{&f.Year, &f.Month, &f.Day, &f.Hour, &f.Minute}

	for i, name := range fieldNames[:n] {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return booking.Fields{}, httperr.ErrBusiness(
				booking.CodeInvalidParameter,
				"Request has invalid parameter: "+name,
			)
		}
		*targets[i] = booking.IntPtr(v)
	}

	return f, nil
}

// ParseAnchor parses an optional YYYY-MM-DD date. Empty yields the zero time.
func ParseAnchor(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(
			booking.CodeInvalidParameter,
			"Request has invalid parameter: anchor",
		)
	}
	return t, nil
}
