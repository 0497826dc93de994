package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_DefaultBusinessHours(t *testing.T) {
	slots, err := Slots("09:00", "18:00", 60)

	require.NoError(t, err)
	require.Len(t, slots, 9)
	assert.Equal(t, "09:00-10:00", slots[0])
	assert.Equal(t, "17:00-18:00", slots[8])

	// Strictly ordered, no duplicates.
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestSlots_HalfHourInterval(t *testing.T) {
	slots, err := Slots("09:00", "12:00", 30)

	require.NoError(t, err)
	require.Len(t, slots, 6)
	assert.Equal(t, "09:00-09:30", slots[0])
	assert.Equal(t, "11:30-12:00", slots[5])
}

func TestSlots_LastSlotNeverPassesClosingTime(t *testing.T) {
	slots, err := Slots("09:00", "17:30", 60)

	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.Equal(t, "16:00-17:00", slots[7])
}

func TestSlots_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		end      string
		interval int
	}{
		{name: "malformed start", start: "nine", end: "18:00", interval: 60},
		{name: "malformed end", start: "09:00", end: "late", interval: 60},
		{name: "zero interval", start: "09:00", end: "18:00", interval: 0},
		{name: "negative interval", start: "09:00", end: "18:00", interval: -30},
		{name: "start after end", start: "18:00", end: "09:00", interval: 60},
		{name: "start equals end", start: "09:00", end: "09:00", interval: 60},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Slots(tc.start, tc.end, tc.interval)
			assert.Error(t, err)
		})
	}
}
