package domain

import "time"

// SlotSeconds is the width of one scheduling slot in seconds.
const SlotSeconds = 15 * 60

// Slot is a discrete 15-minute time unit counted from the Unix epoch.
// All scheduling state is stored and compared in slot units; conversion to
// human-readable time happens only at the request/response boundary.
type Slot int64

// ToSlot converts a unix timestamp (seconds) to the slot containing it, flooring.
func ToSlot(unix int64) Slot {
	return Slot(unix / SlotSeconds)
}

// SlotAt converts a point in time to the slot containing it.
func SlotAt(t time.Time) Slot {
	return ToSlot(t.Unix())
}

// Unix returns the unix timestamp of the start of the slot.
func (s Slot) Unix() int64 {
	return int64(s) * SlotSeconds
}

// Time returns the start of the slot in local time.
func (s Slot) Time() time.Time {
	return time.Unix(s.Unix(), 0)
}

// WeekStart returns the slot of Monday 00:00 local time of the week containing s.
func (s Slot) WeekStart() Slot {
	t := s.Time()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day()-daysSinceMonday, 0, 0, 0, 0, t.Location())
	return SlotAt(monday)
}

// WeekOffset returns s relative to the start of its calendar week.
func (s Slot) WeekOffset() Slot {
	return s - s.WeekStart()
}
