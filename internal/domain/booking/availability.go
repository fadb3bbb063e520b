package booking

import "time"

// BookedDays walks appointment events ordered by start time and returns the
// UTC days of month that hold a full run of SlotsPerDay consecutive events.
// A run is reset once it is recorded: a 12th event on the same day starts a
// new run instead of recording the day twice, and nothing carries into the
// next day.
func BookedDays(events []CalendarEvent) []int {
	var booked []int
	prevDay := 0
	run := 0

	for _, ev := range events {
		start, err := ParseInstant(ev.Start)
		if err != nil {
			continue
		}

		day := start.Day()
		if day == prevDay || prevDay == 0 {
			run++
		} else {
			run = 1
		}
		prevDay = day

		if run == SlotsPerDay {
			booked = append(booked, day)
			run = 0
		}
	}

	return booked
}

// ComputeAvailability produces one entry per day of the month; a day has
// timeslots unless it was found fully booked.
func ComputeAvailability(events []CalendarEvent, lastDayOfMonth int) []DayAvailability {
	full := make(map[int]bool)
	for _, d := range BookedDays(events) {
		full[d] = true
	}

	days := make([]DayAvailability, 0, lastDayOfMonth)
	for d := 1; d <= lastDayOfMonth; d++ {
		days = append(days, DayAvailability{
			Day:          d,
			HasTimeSlots: !full[d],
		})
	}
	return days
}

func LastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
