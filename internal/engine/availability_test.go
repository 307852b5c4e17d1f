package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestEngine_FindCandidateTimes_FullWindow(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	requested := domain.SlotAt(now) + 8 // two hours out

	got := e.FindCandidateTimes(4, requested, 4, 4, now)

	require.Len(t, got, 9)
	assert.Equal(t, requested-4, got[0])
	assert.Equal(t, requested+4, got[8])
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestEngine_FindCandidateTimes_SkipsPast(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	requested := domain.SlotAt(now) + 2

	got := e.FindCandidateTimes(2, requested, 4, 4, now)

	require.Len(t, got, 7)
	assert.Equal(t, domain.SlotAt(now), got[0])
}

func TestEngine_FindCandidateTimes_RespectsOpeningHours(t *testing.T) {
	now := testNow()
	requested := domain.SlotAt(now) + 8
	open := requested - requested.WeekStart()

	venue := testVenue()
	venue.Hours = domain.OpeningHours{{Open: open, Close: open + 6}}
	e := New(venue, now)

	got := e.FindCandidateTimes(2, requested, 4, 4, now)

	// Only ranges fully inside [open, open+6) survive: offsets 0..2
	require.Len(t, got, 3)
	assert.Equal(t, requested, got[0])
	assert.Equal(t, requested+2, got[2])
}

func TestEngine_FindCandidateTimes_PartyTooLarge(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	got := e.FindCandidateTimes(9, domain.SlotAt(now)+8, 4, 4, now)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEngine_FindCandidateTimes_Idempotent(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	requested := domain.SlotAt(now) + 8

	first := e.FindCandidateTimes(4, requested, 4, 4, now)
	second := e.FindCandidateTimes(4, requested, 4, 4, now)

	assert.Equal(t, first, second)
}

func TestEngine_FindCandidateTimes_ExcludesFullyBookedRanges(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	requested := domain.SlotAt(now) + 8

	// A party of eight only fits the two largest tables; occupy both.
	table1, err := e.Book(8, requested, 4, now)
	require.NoError(t, err)
	table2, err := e.Book(8, requested, 4, now)
	require.NoError(t, err)
	require.Equal(t, 9, table1)
	require.Equal(t, 10, table2)

	got := e.FindCandidateTimes(8, requested, 4, 4, now)

	// Every range overlapping [requested, requested+4) is gone
	require.Len(t, got, 2)
	assert.Equal(t, requested-4, got[0])
	assert.Equal(t, requested+4, got[1])
}

func TestEngine_Book_FirstFitPerBand(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	start := domain.SlotAt(now) + 8

	table, err := e.Book(1, start, 4, now)
	require.NoError(t, err)
	assert.Equal(t, 0, table)

	table, err = e.Book(2, start, 4, now)
	require.NoError(t, err)
	assert.Equal(t, 1, table)

	table, err = e.Book(4, start, 4, now)
	require.NoError(t, err)
	assert.Equal(t, 5, table)
}

func TestEngine_Book_SameSlotTakesNextTable(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	start := domain.SlotAt(now) + 8

	first, err := e.Book(4, start, 4, now)
	require.NoError(t, err)
	second, err := e.Book(4, start, 4, now)
	require.NoError(t, err)

	assert.Equal(t, 5, first)
	assert.Equal(t, 6, second)
}

func TestEngine_Book_SpillsIntoLargerBand(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	start := domain.SlotAt(now) + 8

	// Fill the four four-seaters, then the two large tables
	want := []int{5, 6, 7, 8, 9, 10}
	for _, expected := range want {
		table, err := e.Book(4, start, 4, now)
		require.NoError(t, err)
		assert.Equal(t, expected, table)
	}

	_, err := e.Book(4, start, 4, now)
	assert.ErrorIs(t, err, ErrNoTableAvailable)
}

func TestEngine_Book_PartyTooLarge(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	_, err := e.Book(9, domain.SlotAt(now)+8, 4, now)
	assert.ErrorIs(t, err, ErrPartyTooLarge)
}

func TestEngine_Book_OverlappingRangeConflicts(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	start := domain.SlotAt(now) + 8

	table, err := e.Book(1, start, 4, now)
	require.NoError(t, err)
	require.Equal(t, 0, table)

	// A range sharing even one slot spills to the next eligible table
	table, err = e.Book(1, start+3, 4, now)
	require.NoError(t, err)
	assert.Equal(t, 1, table)

	// An adjacent non-overlapping range reuses the single seat
	table, err = e.Book(1, start+4, 4, now)
	require.NoError(t, err)
	assert.Equal(t, 0, table)
}

func TestEngine_Book_PrunesExpiredBookings(t *testing.T) {
	now := testNow()
	e := New(testVenue(), now)

	start := domain.SlotAt(now) + 2

	table, err := e.Book(1, start, 4, now)
	require.NoError(t, err)
	require.Equal(t, 0, table)

	// Two hours later the booking has expired and the seat frees up
	later := (start + 8).Time()
	table, err = e.Book(1, start, 4, later)
	require.NoError(t, err)
	assert.Equal(t, 0, table)
}
