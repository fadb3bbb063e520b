package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	domain "github.com/BruksfildServices01/calendar-booking/internal/domain/booking"
)

// fakeCalendar is an in-memory calendar. Events whose start is not a full
// timestamp are never filtered by time.
type fakeCalendar struct {
	mu     sync.Mutex
	events []domain.CalendarEvent

	lists   []domain.EventQuery
	patches []string
	inserts []domain.NewEvent

	listErr   error
	patchErr  error
	insertErr error
	failAfter int // inserts that succeed before insertErr applies

	// patchResult, when set, is returned by PatchEvent instead of the stored event.
	patchResult *domain.CalendarEvent

	// listBarrier, when set, holds every ListEvents call until all expected
	// callers have read the calendar.
	listBarrier *sync.WaitGroup
}

func (f *fakeCalendar) ListEvents(
	_ context.Context,
	_ oauth2.TokenSource,
	q domain.EventQuery,
) ([]domain.CalendarEvent, error) {
	f.mu.Lock()
	f.lists = append(f.lists, q)
	if f.listErr != nil {
		f.mu.Unlock()
		return nil, f.listErr
	}

	var out []domain.CalendarEvent
	for _, ev := range f.events {
		if q.Query != "" && ev.Summary != q.Query {
			continue
		}
		if start, err := domain.ParseInstant(ev.Start); err == nil {
			if start.Before(q.TimeMin) || !start.Before(q.TimeMax) {
				continue
			}
		}
		out = append(out, ev)
		if q.MaxResults > 0 && int64(len(out)) == q.MaxResults {
			break
		}
	}
	f.mu.Unlock()

	if f.listBarrier != nil {
		f.listBarrier.Done()
		f.listBarrier.Wait()
	}
	return out, nil
}

func (f *fakeCalendar) InsertEvent(
	_ context.Context,
	_ oauth2.TokenSource,
	ev domain.NewEvent,
) (*domain.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil && len(f.inserts) >= f.failAfter {
		return nil, f.insertErr
	}
	f.inserts = append(f.inserts, ev)

	created := domain.CalendarEvent{
		ID:      fmt.Sprintf("seed-%d", len(f.inserts)),
		Summary: ev.Summary,
		Start:   ev.Start.Format(time.RFC3339),
		End:     ev.End.Format(time.RFC3339),
	}
	f.events = append(f.events, created)
	return &created, nil
}

func (f *fakeCalendar) PatchEvent(
	_ context.Context,
	_ oauth2.TokenSource,
	eventID string,
	patch domain.EventPatch,
) (*domain.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.patches = append(f.patches, eventID)
	if f.patchErr != nil {
		return nil, f.patchErr
	}

	for i := range f.events {
		if f.events[i].ID == eventID {
			f.events[i].Summary = patch.Summary
			if f.patchResult != nil {
				ev := *f.patchResult
				return &ev, nil
			}
			ev := f.events[i]
			return &ev, nil
		}
	}
	return nil, errors.New("404 not found")
}

func (f *fakeCalendar) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lists) + len(f.patches) + len(f.inserts)
}
