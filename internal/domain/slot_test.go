package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSlot_Floors(t *testing.T) {
	assert.Equal(t, Slot(0), ToSlot(0))
	assert.Equal(t, Slot(0), ToSlot(899))
	assert.Equal(t, Slot(1), ToSlot(900))
	assert.Equal(t, Slot(1), ToSlot(1799))
	assert.Equal(t, Slot(2), ToSlot(1800))
}

func TestSlot_Unix_RoundTrip(t *testing.T) {
	s := ToSlot(12345 * SlotSeconds)
	assert.Equal(t, int64(12345*SlotSeconds), s.Unix())
	assert.Equal(t, s, ToSlot(s.Unix()))
}

func TestSlotAt_MatchesToSlot(t *testing.T) {
	now := time.Date(2026, time.March, 4, 12, 7, 30, 0, time.Local)
	assert.Equal(t, ToSlot(now.Unix()), SlotAt(now))
}

func TestSlot_WeekStart_IsMondayMidnight(t *testing.T) {
	// Wednesday afternoon
	wed := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.Local)
	weekStart := SlotAt(wed).WeekStart()

	start := weekStart.Time()
	require.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 2, start.Day())
	assert.Equal(t, time.March, start.Month())
}

func TestSlot_WeekStart_MondayMapsToItself(t *testing.T) {
	mon := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)
	s := SlotAt(mon)
	assert.Equal(t, s, s.WeekStart())
}

func TestSlot_WeekOffset(t *testing.T) {
	mon := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)
	assert.Equal(t, Slot(0), SlotAt(mon).WeekOffset())

	// Monday 09:00 is 36 slots into the week
	nine := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local)
	assert.Equal(t, Slot(36), SlotAt(nine).WeekOffset())
}
