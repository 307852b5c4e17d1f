package process_query

import (
	"fmt"

	"github.com/google/uuid"
)

// maxUnitsPerOrder верхняя граница суммарного количества единиц в заказе
const maxUnitsPerOrder = 100

// validateRequest валидирует запрос до обращения к снапшоту
func validateRequest(req *Request) error {
	if req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	switch req.Operation {
	case OpOrder:
		return validateOrder(req)
	case OpGetAvailableTimes, OpBook:
		return validateReservation(req)
	case OpRecommend:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}
}

func validateOrder(req *Request) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrInvalidInput)
	}

	units := 0
	for _, line := range req.Items {
		if line.ItemID <= 0 {
			return fmt.Errorf("%w: item id must be positive", ErrInvalidInput)
		}
		if line.Count <= 0 {
			return fmt.Errorf("%w: item count must be positive", ErrInvalidInput)
		}
		units += line.Count
	}
	if units > maxUnitsPerOrder {
		return fmt.Errorf("%w: at most %d units per order", ErrInvalidInput, maxUnitsPerOrder)
	}
	return nil
}

func validateReservation(req *Request) error {
	if req.PartySize <= 0 {
		return fmt.Errorf("%w: party_size must be positive", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	return nil
}
