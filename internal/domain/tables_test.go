package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBands() TableBands {
	return NewTableBands(map[int]int{8: 2, 1: 1, 4: 4, 2: 4})
}

func TestNewTableBands_SortsByCapacity(t *testing.T) {
	bands := testBands()

	require.Len(t, bands, 4)
	assert.Equal(t, TableBand{Capacity: 1, Count: 1}, bands[0])
	assert.Equal(t, TableBand{Capacity: 2, Count: 4}, bands[1])
	assert.Equal(t, TableBand{Capacity: 4, Count: 4}, bands[2])
	assert.Equal(t, TableBand{Capacity: 8, Count: 2}, bands[3])
}

func TestTableBands_TotalTables(t *testing.T) {
	assert.Equal(t, 11, testBands().TotalTables())
	assert.Equal(t, 0, TableBands{}.TotalTables())
}

func TestTableBands_MaxCapacity(t *testing.T) {
	assert.Equal(t, 8, testBands().MaxCapacity())
	assert.Equal(t, 0, TableBands{}.MaxCapacity())
}

func TestTableBands_EligibleStartIndex(t *testing.T) {
	bands := testBands()

	tests := []struct {
		name      string
		partySize int
		index     int
		ok        bool
	}{
		{"single seat", 1, 0, true},
		{"pair lands on two-seaters", 2, 1, true},
		{"three spills past the two-seaters", 3, 5, true},
		{"four fits the four-seaters", 4, 5, true},
		{"five needs the large tables", 5, 9, true},
		{"eight fills the largest band", 8, 9, true},
		{"nine exceeds every band", 9, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := bands.EligibleStartIndex(tt.partySize)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.index, index)
			}
		})
	}
}

func TestTableBands_EligibleStartIndex_NoBands(t *testing.T) {
	_, ok := TableBands{}.EligibleStartIndex(1)
	assert.False(t, ok)
}
