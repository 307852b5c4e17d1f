package engine

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// FindCandidateTimes searches for bookable start slots around a requested
// time. For every offset in [-window, +window] (ascending) it takes the
// candidate range [s, s+duration), skips candidates starting in the past or
// not fully contained in one weekly opening interval, and records the
// candidate if any eligible table is free for the whole range (first-fit:
// the scan over tables stops at the first free one).
//
// The linear scan over tables and slots is intentional: the occupancy
// horizon is an operational booking window, not years, so the constant cost
// is negligible and the scan order is auditable.
//
// Returns the empty slice when no table band seats the party at all.
func (e *Engine) FindCandidateTimes(partySize int, requested domain.Slot, duration, window int, now time.Time) []domain.Slot {
	nowSlot := domain.SlotAt(now)

	startIndex, ok := e.bands.EligibleStartIndex(partySize)
	if !ok {
		return []domain.Slot{}
	}

	candidates := []domain.Slot{}
	for offset := -window; offset <= window; offset++ {
		s := requested + domain.Slot(offset)
		end := s + domain.Slot(duration)

		if s < nowSlot {
			continue
		}
		if !e.hours.Contains(s, end) {
			continue
		}

		for table := startIndex; table < e.bands.TotalTables(); table++ {
			e.pruneTable(table, nowSlot)
			if e.tableFree(table, s, end) {
				candidates = append(candidates, s)
				break
			}
		}
	}
	return candidates
}

// Book commits a reservation for the exact range [start, start+duration).
// The table scan order is the same as FindCandidateTimes: ascending from
// the first index of the smallest adequate band, spilling into larger bands
// when the band is full. No offset window is tried and opening hours are
// not re-checked here; callers are expected to book times previously
// offered by FindCandidateTimes.
//
// On success every slot of the range is marked occupied for the chosen
// table and its index is returned. Failure is a reported value:
// ErrPartyTooLarge when no band seats the party, ErrNoTableAvailable when
// no table has the whole range free.
func (e *Engine) Book(partySize int, start domain.Slot, duration int, now time.Time) (int, error) {
	nowSlot := domain.SlotAt(now)

	startIndex, ok := e.bands.EligibleStartIndex(partySize)
	if !ok {
		return 0, ErrPartyTooLarge
	}

	end := start + domain.Slot(duration)
	for table := startIndex; table < e.bands.TotalTables(); table++ {
		e.pruneTable(table, nowSlot)
		if !e.tableFree(table, start, end) {
			continue
		}
		for t := start; t < end; t++ {
			e.availability[table][t] = true
		}
		return table, nil
	}
	return 0, ErrNoTableAvailable
}

// pruneTable drops the table's occupancy entries that are strictly in the
// past. Future entries are never touched; a booked slot stays occupied
// until it expires.
func (e *Engine) pruneTable(table int, now domain.Slot) {
	occupied, ok := e.availability[table]
	if !ok {
		return
	}
	for slot := range occupied {
		if slot < now {
			delete(occupied, slot)
		}
	}
}

// tableFree reports whether the table has no occupied slot in [start, end).
func (e *Engine) tableFree(table int, start, end domain.Slot) bool {
	occupied, ok := e.availability[table]
	if !ok {
		return false
	}
	for t := start; t < end; t++ {
		if occupied[t] {
			return false
		}
	}
	return true
}
