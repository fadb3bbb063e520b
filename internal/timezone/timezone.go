package timezone

import "time"

// All bookings are expressed in UTC; the calendar is queried and written in UTC.
const DefaultTimezone = "UTC"

// Clock returns the current instant. Use cases take one so tests can pin "now".
type Clock func() time.Time

func Location() *time.Location {
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t.In(Location()) }
}

// Date builds a UTC instant from calendar fields. Out of range values are
// normalized the same way time.Date does.
func Date(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, Location())
}
