package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	cases := []struct {
		raw  string
		want BookingState
	}{
		{"", StateAll},
		{"ALL", StateAll},
		{"CURRENT", StateCurrent},
		{"PAST", StatePast},
		{"FUTURE", StateFuture},
		{"WAITING", StateWaiting},
		{"REJECTED", StateRejected},
	}

	for _, tc := range cases {
		t.Run("raw="+tc.raw, func(t *testing.T) {
			state, err := ParseBookingState(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, state)
		})
	}
}

func TestParseBookingState_Unknown(t *testing.T) {
	for _, raw := range []string{"UNKNOWN", "all", "current", "APPROVED", "garbage"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseBookingState(raw)
			assert.ErrorIs(t, err, ErrUnknownState)
		})
	}
}

func TestBookingStateString(t *testing.T) {
	assert.Equal(t, "ALL", StateAll.String())
	assert.Equal(t, "CURRENT", StateCurrent.String())
	assert.Equal(t, "PAST", StatePast.String())
	assert.Equal(t, "FUTURE", StateFuture.String())
	assert.Equal(t, "WAITING", StateWaiting.String())
	assert.Equal(t, "REJECTED", StateRejected.String())
}
