package gcal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
	"github.com/BruksfildServices01/calendar-booking/internal/timezone"
)

// Client implements booking.Calendar on top of the Calendar v3 API. It keeps
// no credentials; each call builds its service from the token source it gets.
type Client struct {
	calendarID string
	log        *zap.Logger
	opts       []option.ClientOption
}

var _ booking.Calendar = (*Client)(nil)

func NewClient(
	calendarID string,
	log *zap.Logger,
	opts ...option.ClientOption,
) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{
		calendarID: calendarID,
		log:        log.Named("gcal"),
		opts:       opts,
	}
}

func (c *Client) service(ctx context.Context, auth oauth2.TokenSource) (*calendar.Service, error) {
	opts := append([]option.ClientOption{option.WithTokenSource(auth)}, c.opts...)

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return svc, nil
}

// ======================================================
// OPERATIONS
// ======================================================

func (c *Client) ListEvents(
	ctx context.Context,
	auth oauth2.TokenSource,
	q booking.EventQuery,
) ([]booking.CalendarEvent, error) {

	svc, err := c.service(ctx, auth)
	if err != nil {
		return nil, &booking.TransportError{Op: "list", Err: err}
	}

	call := svc.Events.List(c.calendarID).
		TimeMin(q.TimeMin.UTC().Format(time.RFC3339)).
		TimeMax(q.TimeMax.UTC().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")
	if q.MaxResults > 0 {
		call = call.MaxResults(q.MaxResults)
	}
	if q.Query != "" {
		call = call.Q(q.Query)
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		c.log.Warn("list events failed",
			zap.Error(err),
			zap.Time("time_min", q.TimeMin),
			zap.Time("time_max", q.TimeMax),
			zap.String("q", q.Query),
		)
		return nil, &booking.TransportError{Op: "list", Err: err}
	}

	out := make([]booking.CalendarEvent, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, fromAPI(item))
	}

	c.log.Debug("listed events", zap.Int("count", len(out)), zap.String("q", q.Query))
	return out, nil
}

func (c *Client) InsertEvent(
	ctx context.Context,
	auth oauth2.TokenSource,
	ev booking.NewEvent,
) (*booking.CalendarEvent, error) {

	svc, err := c.service(ctx, auth)
	if err != nil {
		return nil, &booking.TransportError{Op: "insert", Err: err}
	}

	created, err := svc.Events.Insert(c.calendarID, &calendar.Event{
		Summary:    ev.Summary,
		Start:      dateTime(ev.Start),
		End:        dateTime(ev.End),
		Recurrence: ev.Recurrence,
	}).Context(ctx).Do()
	if err != nil {
		c.log.Warn("insert event failed", zap.Error(err), zap.Time("start", ev.Start))
		return nil, &booking.TransportError{Op: "insert", Err: err}
	}

	out := fromAPI(created)
	c.log.Info("event created",
		zap.String("id", out.ID),
		zap.String("summary", out.Summary),
		zap.String("start", out.Start),
		zap.String("end", out.End),
	)
	return &out, nil
}

func (c *Client) PatchEvent(
	ctx context.Context,
	auth oauth2.TokenSource,
	eventID string,
	patch booking.EventPatch,
) (*booking.CalendarEvent, error) {

	svc, err := c.service(ctx, auth)
	if err != nil {
		return nil, &booking.TransportError{Op: "patch", Err: err}
	}

	updated, err := svc.Events.Patch(c.calendarID, eventID, &calendar.Event{
		Summary: patch.Summary,
	}).Context(ctx).Do()
	if err != nil {
		c.log.Warn("patch event failed", zap.Error(err), zap.String("id", eventID))
		return nil, &booking.TransportError{Op: "patch", Err: err}
	}

	out := fromAPI(updated)
	return &out, nil
}

// ======================================================
// MAPPING
// ======================================================

func dateTime(t time.Time) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.UTC().Format(time.RFC3339),
		TimeZone: timezone.DefaultTimezone,
	}
}

func fromAPI(ev *calendar.Event) booking.CalendarEvent {
	out := booking.CalendarEvent{
		ID:      ev.Id,
		Summary: ev.Summary,
	}
	if ev.Start != nil {
		out.Start = firstNonEmpty(ev.Start.DateTime, ev.Start.Date)
	}
	if ev.End != nil {
		out.End = firstNonEmpty(ev.End.DateTime, ev.End.Date)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
