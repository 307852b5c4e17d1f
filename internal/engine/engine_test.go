package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// testVenue mirrors a small venue: one single seat, four pairs, four
// four-seaters and two large tables, open around the clock.
func testVenue() domain.VenueConfig {
	return domain.VenueConfig{
		Bands: domain.NewTableBands(map[int]int{1: 1, 2: 4, 4: 4, 8: 2}),
		Hours: domain.OpeningHours{{Open: 0, Close: domain.SlotsPerWeek}},
		Menu: domain.Menu{
			1: {ID: 1, Name: "Classic Burger", Description: "Beef patty with cheese", Price: 12.5, PrepMinutes: 10, Allergens: []string{"gluten", "dairy"}},
			2: {ID: 2, Name: "Fries", Description: "Crispy golden fries", Price: 4.0, PrepMinutes: 5, Allergens: []string{"gluten"}},
			3: {ID: 3, Name: "Garden Salad", Description: "Mixed greens", Price: 8.0, PrepMinutes: 7, Allergens: []string{}},
			4: {ID: 4, Name: "Lemonade", Description: "Fresh squeezed", Price: 3.5, PrepMinutes: 1, Allergens: []string{}},
		},
	}
}

// testNow is a fixed Wednesday noon, safely inside the week.
func testNow() time.Time {
	return time.Date(2026, time.March, 4, 12, 0, 0, 0, time.Local)
}

func TestNew_StartsEmpty(t *testing.T) {
	e := New(testVenue(), testNow())

	assert.Equal(t, 0, e.QueueLength())
	assert.Len(t, e.availability, 11)
	for table, occupied := range e.availability {
		assert.Empty(t, occupied, "table %d should start free", table)
	}
}

func TestEngine_Menu(t *testing.T) {
	e := New(testVenue(), testNow())

	menu := e.Menu()
	assert.Len(t, menu, 4)

	item, ok := menu.Item(2)
	assert.True(t, ok)
	assert.Equal(t, "Fries", item.Name)
}

func TestEngine_RecommendationData_EchoesInput(t *testing.T) {
	e := New(testVenue(), testNow())

	data := e.RecommendationData([]string{"spicy"}, "birthday dinner", []string{"nuts"})
	assert.Len(t, data.Menu, 4)
	assert.Equal(t, []string{"spicy"}, data.Preferences)
	assert.Equal(t, "birthday dinner", data.Context)
	assert.Equal(t, []string{"nuts"}, data.Allergies)
}

func TestEngine_RecommendationData_NilSlices(t *testing.T) {
	e := New(testVenue(), testNow())

	data := e.RecommendationData(nil, "", nil)
	assert.NotNil(t, data.Preferences)
	assert.NotNil(t, data.Allergies)
	assert.Empty(t, data.Preferences)
	assert.Empty(t, data.Allergies)
}
