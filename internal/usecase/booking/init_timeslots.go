package booking

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/BruksfildServices01/calendar-booking/internal/audit"
	domain "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
)

// InitTimeslots seeds the calendar with one recurring weekday event per
// template timeslot. It is meant to run once per calendar.
type InitTimeslots struct {
	cal      domain.Calendar
	clock    timezone.Clock
	template []domain.Timeslot
	audit    *audit.Dispatcher
}

func NewInitTimeslots(
	cal domain.Calendar,
	clock timezone.Clock,
	template []domain.Timeslot,
	audit *audit.Dispatcher,
) *InitTimeslots {
	return &InitTimeslots{
		cal:      cal,
		clock:    clock,
		template: template,
		audit:    audit,
	}
}

// Execute inserts the template starting on anchor, which must be a Monday.
// A zero anchor means the next Monday after today. Inserts are sequential and
// stop at the first failure; the number already created is returned with it.
func (uc *InitTimeslots) Execute(
	ctx context.Context,
	auth oauth2.TokenSource,
	anchor time.Time,
) (int, error) {

	if anchor.IsZero() {
		anchor = NextMonday(uc.clock())
	}
	anchor = time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)

	if anchor.Weekday() != time.Monday {
		return 0, httperr.ErrBusiness("invalid_anchor", "Anchor date must be a Monday")
	}

	created := 0
	for i, slot := range uc.template {
		start, err := slot.StartOn(anchor)
		if err != nil {
			return created, fmt.Errorf("timeslot %d: %w", i, err)
		}
		end, err := slot.EndOn(anchor)
		if err != nil {
			return created, fmt.Errorf("timeslot %d: %w", i, err)
		}

		ev, err := uc.cal.InsertEvent(ctx, auth, domain.NewEvent{
			Summary:    domain.SummaryTimeslot,
			Start:      start,
			End:        end,
			Recurrence: []string{domain.WeekdayRecurrence},
		})
		if err != nil {
			return created, transportErr("insert", err)
		}
		created++

		if uc.audit != nil && ev != nil {
			uc.audit.Dispatch(audit.Event{
				RequestID: audit.RequestID(ctx),
				Action:    "timeslot_seeded",
				Entity:    "timeslot",
				EntityID:  ev.ID,
				Metadata: map[string]any{
					"start": start.Format(time.RFC3339),
					"end":   end.Format(time.RFC3339),
				},
			})
		}
	}

	return created, nil
}

// NextMonday returns midnight UTC of the first Monday strictly after now.
func NextMonday(now time.Time) time.Time {
	now = now.UTC()
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
