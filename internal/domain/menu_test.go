package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuItem_HasAllergen_CaseInsensitive(t *testing.T) {
	item := MenuItem{Name: "Fries", Allergens: []string{"gluten"}}

	assert.True(t, item.HasAllergen("gluten"))
	assert.True(t, item.HasAllergen("Gluten"))
	assert.True(t, item.HasAllergen("GLUTEN"))
	assert.False(t, item.HasAllergen("nuts"))
}

func TestMenuItem_FirstConflict(t *testing.T) {
	item := MenuItem{Name: "Burger", Allergens: []string{"gluten", "dairy"}}

	allergen, conflict := item.FirstConflict([]string{"Dairy"})
	assert.True(t, conflict)
	assert.Equal(t, "dairy", allergen)

	allergen, conflict = item.FirstConflict([]string{"nuts", "GLUTEN"})
	assert.True(t, conflict)
	assert.Equal(t, "gluten", allergen)

	_, conflict = item.FirstConflict([]string{"nuts"})
	assert.False(t, conflict)

	_, conflict = item.FirstConflict(nil)
	assert.False(t, conflict)
}

func TestMenu_Item(t *testing.T) {
	menu := Menu{1: {ID: 1, Name: "Salad"}}

	item, ok := menu.Item(1)
	assert.True(t, ok)
	assert.Equal(t, "Salad", item.Name)

	_, ok = menu.Item(99)
	assert.False(t, ok)
}
