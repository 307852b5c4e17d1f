package domain

import "sort"

// TableBand is one contiguous run of equally-sized tables.
type TableBand struct {
	Capacity int
	Count    int
}

// TableBands is the venue's fixed partition of tables into capacity bands,
// ordered by ascending capacity. Table indices are assigned band by band:
// band boundaries are cumulative counts, so the first index of a band is the
// sum of the counts of all smaller bands.
type TableBands []TableBand

// NewTableBands builds the band sequence from a capacity→count mapping,
// sorting capacities ascending.
func NewTableBands(sizes map[int]int) TableBands {
	capacities := make([]int, 0, len(sizes))
	for capacity := range sizes {
		capacities = append(capacities, capacity)
	}
	sort.Ints(capacities)

	bands := make(TableBands, 0, len(capacities))
	for _, capacity := range capacities {
		bands = append(bands, TableBand{Capacity: capacity, Count: sizes[capacity]})
	}
	return bands
}

// TotalTables returns the number of physical tables across all bands.
func (b TableBands) TotalTables() int {
	total := 0
	for _, band := range b {
		total += band.Count
	}
	return total
}

// MaxCapacity returns the capacity of the largest band, or 0 for no bands.
func (b TableBands) MaxCapacity() int {
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1].Capacity
}

// EligibleStartIndex returns the first table index of the smallest band whose
// capacity seats partySize. The second return value is false when the party
// exceeds every configured capacity.
func (b TableBands) EligibleStartIndex(partySize int) (int, bool) {
	if partySize > b.MaxCapacity() {
		return 0, false
	}

	current := 0
	for _, band := range b {
		if band.Capacity < partySize {
			current += band.Count
			continue
		}
		return current, true
	}
	return 0, false
}
