package engine

import (
	"fmt"
	"time"
)

// OrderSummary reports the cumulative totals over the entire preparation
// queue after a successful submit - a new order waits behind everything
// already queued, so both figures cover the whole queue, not just the new
// line items.
type OrderSummary struct {
	Cost        float64
	WaitMinutes int
}

// SubmitOrder appends line items (one id per unit, in the order given) to
// the preparation queue. The operation is all-or-nothing: every referenced
// id is validated against the menu and the declared allergies are screened
// against every item's allergens before anything is appended. On any
// failure the queue is left untouched.
func (e *Engine) SubmitOrder(items []int, allergies []string) (OrderSummary, error) {
	for _, id := range items {
		if _, ok := e.menu.Item(id); !ok {
			return OrderSummary{}, fmt.Errorf("%w: item %d not found in the menu", ErrUnknownItem, id)
		}
	}

	for _, id := range items {
		item, _ := e.menu.Item(id)
		if allergen, conflict := item.FirstConflict(allergies); conflict {
			return OrderSummary{}, &AllergyConflictError{ItemName: item.Name, Allergen: allergen}
		}
	}

	e.orders = append(e.orders, items...)

	var summary OrderSummary
	for _, id := range e.orders {
		item, _ := e.menu.Item(id)
		summary.Cost += item.Price
		summary.WaitMinutes += item.PrepMinutes
	}
	return summary, nil
}

// AdvanceQueue applies the wall-clock time elapsed since the last
// advancement to the head of the queue: while the elapsed whole minutes
// exceed the head item's prep time, the head is popped and its prep time
// subtracted from the budget. Preparation is strictly sequential - there is
// no parallelism across the queue. Fractional minutes are discarded and
// leftover budget below the head's prep time is not carried into the item's
// progress. A no-op on an empty queue.
func (e *Engine) AdvanceQueue(now time.Time) {
	elapsed := int(now.Unix()-e.lastAdvanced) / 60

	for len(e.orders) > 0 {
		item, _ := e.menu.Item(e.orders[0])
		if elapsed <= item.PrepMinutes {
			break
		}
		elapsed -= item.PrepMinutes
		e.orders = e.orders[1:]
	}

	e.lastAdvanced = now.Unix()
}
