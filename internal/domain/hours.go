package domain

// HoursInterval is one [Open, Close) opening interval expressed in slot
// offsets from the start of a calendar week (Monday 00:00 local).
type HoursInterval struct {
	Open  Slot
	Close Slot
}

// OpeningHours is the venue's weekly schedule, in the order configured.
type OpeningHours []HoursInterval

// Contains reports whether the whole range [start, end) falls inside a
// single opening interval, after normalizing both bounds to offsets from
// the start of the week containing start.
func (h OpeningHours) Contains(start, end Slot) bool {
	weekStart := start.WeekStart()
	for _, iv := range h {
		if start-weekStart >= iv.Open && end-weekStart <= iv.Close {
			return true
		}
	}
	return false
}
