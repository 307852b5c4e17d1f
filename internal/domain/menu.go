package domain

import "strings"

// MenuItem is an immutable dish record. The menu is supplied at engine
// construction and never mutated afterwards.
type MenuItem struct {
	ID          int
	Name        string
	Description string
	Price       float64
	PrepMinutes int
	Allergens   []string
}

// HasAllergen reports whether the item contains the given allergen.
// Matching is case-insensitive.
func (m MenuItem) HasAllergen(allergen string) bool {
	for _, a := range m.Allergens {
		if strings.EqualFold(a, allergen) {
			return true
		}
	}
	return false
}

// FirstConflict returns the first of the item's allergens present in the
// declared allergy list, case-insensitively. The second return value is
// false when there is no conflict.
func (m MenuItem) FirstConflict(allergies []string) (string, bool) {
	for _, allergen := range m.Allergens {
		for _, declared := range allergies {
			if strings.EqualFold(allergen, declared) {
				return allergen, true
			}
		}
	}
	return "", false
}

// Menu is a read-only view of dishes keyed by positive item id.
type Menu map[int]MenuItem

// Item looks up a dish by id.
func (m Menu) Item(id int) (MenuItem, bool) {
	item, ok := m[id]
	return item, ok
}
