package domain

// VenueConfig is the immutable venue description a fresh engine is seeded
// with: the table partition, the weekly opening hours and the menu.
type VenueConfig struct {
	Bands TableBands
	Hours OpeningHours
	Menu  Menu
}
