package booking

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"

	domain "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
)

// listDayTimeslots returns the open timeslot events of one UTC day, IDs included.
func listDayTimeslots(
	ctx context.Context,
	cal domain.Calendar,
	auth oauth2.TokenSource,
	day time.Time,
) ([]domain.Timeslot, error) {

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	events, err := cal.ListEvents(ctx, auth, domain.EventQuery{
		TimeMin:    start,
		TimeMax:    start.AddDate(0, 0, 1),
		MaxResults: domain.SlotsPerDay,
		Query:      domain.SummaryTimeslot,
	})
	if err != nil {
		return nil, transportErr("list", err)
	}

	slots := make([]domain.Timeslot, 0, len(events))
	for _, ev := range events {
		slots = append(slots, domain.Timeslot{
			StartTime: ev.Start,
			EndTime:   ev.End,
			ID:        ev.ID,
		})
	}
	return slots, nil
}

func transportErr(op string, err error) error {
	var te *domain.TransportError
	if errors.As(err, &te) {
		return err
	}
	return &domain.TransportError{Op: op, Err: err}
}
