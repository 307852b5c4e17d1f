package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownItem возвращается при ссылке на несуществующий пункт меню
	ErrUnknownItem = errors.New("engine: unknown menu item")

	// ErrPartyTooLarge возвращается, когда ни один стол не вмещает компанию
	ErrPartyTooLarge = errors.New("engine: no table seats a party this size")

	// ErrNoTableAvailable возвращается, когда нет свободного стола на запрошенное время
	ErrNoTableAvailable = errors.New("engine: no table available for the requested time")

	// ErrCorruptSnapshot возвращается, когда снапшот не проходит структурную валидацию
	ErrCorruptSnapshot = errors.New("engine: corrupt snapshot")
)

// AllergyConflictError reports the first ordered item whose allergens
// intersect the declared allergy list. The order is rejected whole.
type AllergyConflictError struct {
	ItemName string
	Allergen string
}

func (e *AllergyConflictError) Error() string {
	return fmt.Sprintf("engine: cannot place order: %s contains %s", e.ItemName, e.Allergen)
}
