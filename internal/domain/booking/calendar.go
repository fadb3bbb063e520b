package booking

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// Calendar is everything the booking flows need from the calendar provider.
// The authorization is passed on every call; implementations must not keep it.
type Calendar interface {
	// ListEvents returns single (expanded) events ordered by start time.
	ListEvents(
		ctx context.Context,
		auth oauth2.TokenSource,
		q EventQuery,
	) ([]CalendarEvent, error)

	InsertEvent(
		ctx context.Context,
		auth oauth2.TokenSource,
		ev NewEvent,
	) (*CalendarEvent, error)

	PatchEvent(
		ctx context.Context,
		auth oauth2.TokenSource,
		eventID string,
		patch EventPatch,
	) (*CalendarEvent, error)
}

type EventQuery struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Query is a free text filter matched against event fields.
	Query string
}

type NewEvent struct {
	Summary    string
	Start      time.Time
	End        time.Time
	Recurrence []string
}

type EventPatch struct {
	Summary string
}

// TransportError wraps a failed calendar call. It is never retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calendar %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
