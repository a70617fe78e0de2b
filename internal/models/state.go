package models

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when a listing filter string does not name
// a known booking state.
var ErrUnknownState = errors.New("unknown booking state")

// BookingState is a query-only classification of bookings relative to the
// current time. It is never persisted; it only drives listing filters.
type BookingState int

const (
	StateAll BookingState = iota
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
)

var stateNames = map[BookingState]string{
	StateAll:      "ALL",
	StateCurrent:  "CURRENT",
	StatePast:     "PAST",
	StateFuture:   "FUTURE",
	StateWaiting:  "WAITING",
	StateRejected: "REJECTED",
}

func (s BookingState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BookingState(%d)", int(s))
}

// ParseBookingState maps a filter string to a BookingState. An empty string
// defaults to ALL. Unrecognized input is the single place ErrUnknownState
// can originate.
func ParseBookingState(raw string) (BookingState, error) {
	switch raw {
	case "", "ALL":
		return StateAll, nil
	case "CURRENT":
		return StateCurrent, nil
	case "PAST":
		return StatePast, nil
	case "FUTURE":
		return StateFuture, nil
	case "WAITING":
		return StateWaiting, nil
	case "REJECTED":
		return StateRejected, nil
	default:
		return StateAll, fmt.Errorf("%w: %s", ErrUnknownState, raw)
	}
}
