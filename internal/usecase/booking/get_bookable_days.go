package booking

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	domain "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
)

// Upper bound on appointment events fetched for one month.
const maxMonthEvents = 350

// ======================================================
// USE CASE
// ======================================================

type GetBookableDays struct {
	cal   domain.Calendar
	clock timezone.Clock
}

func NewGetBookableDays(
	cal domain.Calendar,
	clock timezone.Clock,
) *GetBookableDays {
	return &GetBookableDays{
		cal:   cal,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetBookableDays) Execute(
	ctx context.Context,
	auth oauth2.TokenSource,
	f domain.Fields,
) ([]domain.DayAvailability, error) {

	now := uc.clock()

	if err := domain.ValidateGetDays(f, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Window: from today (or the 1st) to the end of the month
	// --------------------------------------------------
	monthStart := timezone.Date(*f.Year, *f.Month, 1, 0, 0)
	monthEnd := monthStart.AddDate(0, 1, 0)

	from := monthStart
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if today.After(from) {
		from = today
	}

	events, err := uc.cal.ListEvents(ctx, auth, domain.EventQuery{
		TimeMin:    from,
		TimeMax:    monthEnd,
		MaxResults: maxMonthEvents,
		Query:      domain.SummaryAppointment,
	})
	if err != nil {
		return nil, transportErr("list", err)
	}

	// --------------------------------------------------
	// Aggregate
	// --------------------------------------------------
	last := domain.LastDayOfMonth(monthStart.Year(), int(monthStart.Month()))
	return domain.ComputeAvailability(events, last), nil
}
