package booking

import (
	"context"

	"golang.org/x/oauth2"

	domain "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
)

type GetAvailableTimeslots struct {
	cal   domain.Calendar
	clock timezone.Clock
}

func NewGetAvailableTimeslots(
	cal domain.Calendar,
	clock timezone.Clock,
) *GetAvailableTimeslots {
	return &GetAvailableTimeslots{
		cal:   cal,
		clock: clock,
	}
}

// Execute lists the open timeslots of a day. Event IDs are not exposed.
func (uc *GetAvailableTimeslots) Execute(
	ctx context.Context,
	auth oauth2.TokenSource,
	f domain.Fields,
) ([]domain.Timeslot, error) {

	if err := domain.ValidateGetTimeslots(f, uc.clock()); err != nil {
		return nil, err
	}

	slots, err := listDayTimeslots(ctx, uc.cal, auth, f.Instant(domain.KindTimeslots))
	if err != nil {
		return nil, err
	}

	for i := range slots {
		slots[i].ID = ""
	}
	return slots, nil
}
