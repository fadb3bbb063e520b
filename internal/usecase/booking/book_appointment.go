package booking

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/BruksfildServices01/calendar-booking/internal/audit"
	domain "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/httperr"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// BookAppointment turns an open timeslot event into an appointment. Two
// concurrent requests for the same slot can both succeed; there is no lock.
type BookAppointment struct {
	cal   domain.Calendar
	clock timezone.Clock
	audit *audit.Dispatcher
}

func NewBookAppointment(
	cal domain.Calendar,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		cal:   cal,
		clock: clock,
		audit: audit,
	}
}

// attempt tracks one booking through its stages.
type attempt struct {
	stage  domain.Stage
	fields domain.Fields
}

func (a *attempt) advance(to domain.Stage) error {
	if err := domain.CanAdvance(a.stage, to); err != nil {
		return err
	}
	a.stage = to
	return nil
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	auth oauth2.TokenSource,
	f domain.Fields,
) (*domain.BookingResult, error) {

	a := &attempt{stage: domain.StageValidating, fields: f}

	// --------------------------------------------------
	// 1. Validate (no calendar calls on failure)
	// --------------------------------------------------
	if err := domain.ValidateBooking(f, uc.clock()); err != nil {
		return nil, uc.fail(ctx, a, domain.StageRejected, "", err)
	}

	// --------------------------------------------------
	// 2. Fetch the day's open timeslots
	// --------------------------------------------------
	if err := a.advance(domain.StageFetching); err != nil {
		return nil, err
	}

	slots, err := listDayTimeslots(ctx, uc.cal, auth, f.Instant(domain.KindBooking))
	if err != nil {
		return nil, uc.fail(ctx, a, domain.StageTransportError, "", err)
	}

	// --------------------------------------------------
	// 3. Match
	// --------------------------------------------------
	if err := a.advance(domain.StageMatching); err != nil {
		return nil, err
	}

	slot, ok := domain.FindTimeslot(slots, *f.Year, *f.Month, *f.Day, *f.Hour, *f.Minute)
	if !ok {
		return nil, uc.fail(ctx, a, domain.StageNoMatch, "",
			httperr.ErrBusiness(domain.CodeInvalidTimeslot, domain.MsgInvalidTimeslot))
	}

	// --------------------------------------------------
	// 4. Claim: exactly one mutating call
	// --------------------------------------------------
	if err := a.advance(domain.StageMutating); err != nil {
		return nil, err
	}

	ev, err := uc.cal.PatchEvent(ctx, auth, slot.ID, domain.EventPatch{
		Summary: domain.SummaryAppointment,
	})
	if err != nil {
		return nil, uc.fail(ctx, a, domain.StageTransportError, slot.ID, transportErr("patch", err))
	}

	if err := a.advance(domain.StageBooked); err != nil {
		return nil, err
	}

	res := bookedResult(slot, ev)
	res.Stage = a.stage

	uc.record(ctx, a, res.EventID, map[string]any{
		"start_time": res.StartTime,
		"end_time":   res.EndTime,
	})

	return res, nil
}

// bookedResult reports the patched event as the calendar returned it. Fields
// the response leaves empty come from the listed slot.
func bookedResult(slot domain.Timeslot, ev *domain.CalendarEvent) *domain.BookingResult {
	res := &domain.BookingResult{
		EventID:   slot.ID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
	if ev == nil {
		return res
	}
	if ev.ID != "" {
		res.EventID = ev.ID
	}
	if ev.Start != "" {
		res.StartTime = ev.Start
	}
	if ev.End != "" {
		res.EndTime = ev.End
	}
	return res
}

// ======================================================
// HELPERS
// ======================================================

func (uc *BookAppointment) fail(
	ctx context.Context,
	a *attempt,
	to domain.Stage,
	eventID string,
	cause error,
) error {
	if err := a.advance(to); err != nil {
		return errors.Join(cause, err)
	}

	meta := map[string]any{"error": cause.Error()}
	if be, ok := httperr.AsBusiness(cause); ok {
		meta["code"] = be.Code
	}
	uc.record(ctx, a, eventID, meta)

	return cause
}

func (uc *BookAppointment) record(
	ctx context.Context,
	a *attempt,
	eventID string,
	meta map[string]any,
) {
	if uc.audit == nil {
		return
	}

	meta["request"] = requestedFields(a.fields)

	uc.audit.Dispatch(audit.Event{
		RequestID: audit.RequestID(ctx),
		Action:    "booking_" + string(a.stage),
		Entity:    "timeslot",
		EntityID:  eventID,
		Metadata:  meta,
	})
}

func requestedFields(f domain.Fields) map[string]int {
	out := make(map[string]int, 5)
	put := func(name string, v *int) {
		if v != nil {
			out[name] = *v
		}
	}
	put("year", f.Year)
	put("month", f.Month)
	put("day", f.Day)
	put("hour", f.Hour)
	put("minute", f.Minute)
	return out
}
