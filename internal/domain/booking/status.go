package booking

import "github.com/BruksfildServices01/calendar-booking/internal/httperr"

// ===============================
// Booking attempt stages
// ===============================

type Stage string

const (
	StageValidating     Stage = "validating"
	StageRejected       Stage = "rejected"
	StageFetching       Stage = "fetching"
	StageMatching       Stage = "matching"
	StageNoMatch        Stage = "no_match"
	StageMutating       Stage = "mutating"
	StageTransportError Stage = "transport_error"
	StageBooked         Stage = "booked"
)

var transitions = map[Stage][]Stage{
	StageValidating: {StageRejected, StageFetching},
	StageFetching:   {StageTransportError, StageMatching},
	StageMatching:   {StageNoMatch, StageMutating},
	StageMutating:   {StageTransportError, StageBooked},
}

// Terminal stages end an attempt; nothing follows them.
func (s Stage) Terminal() bool {
	_, ok := transitions[s]
	return !ok
}

// CanAdvance checks a single step of the booking state machine.
func CanAdvance(from, to Stage) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state", string(from)+" -> "+string(to))
}
