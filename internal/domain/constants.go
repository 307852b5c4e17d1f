package domain

// Default booking parameters, in slot units
const (
	// DefaultBookingSlots is the length of a reservation (one hour).
	DefaultBookingSlots = 4

	// DefaultSearchWindow is how far around a requested time the
	// availability search looks, in each direction.
	DefaultSearchWindow = 4
)

// Time format constants
const (
	// TimeFormat is the wire format for every request and response time.
	// External callers send and receive times exclusively in this layout.
	TimeFormat = "02 Jan 2006, 15:04"
)

// SlotsPerWeek is the number of slots in a calendar week. Opening hours
// offsets are always within [0, SlotsPerWeek).
const SlotsPerWeek = 7 * 24 * 4
