package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// The snapshot is the portable JSON closure of the engine state. JSON
// objects force string keys, so every integer-keyed mapping (table index,
// slot, menu id) is written with stringified keys and re-normalized to int
// on decode. That normalization is a correctness contract, not a
// convenience: a string-keyed availability or menu map silently never
// matches an integer lookup, desynchronizing the state from what the
// caller believes was booked. Components past this boundary only ever see
// integer keys.
type snapshot struct {
	TableSizes   map[string]int             `json:"table_sizes"`
	Availability map[string]map[string]bool `json:"available"`
	Menu         map[string]snapshotItem    `json:"menu"`
	Hours        [][2]int64                 `json:"hours"`
	Orders       []int                      `json:"orders"`
	LastAdvanced int64                      `json:"time"`
}

type snapshotItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PrepMinutes int      `json:"time"`
	Allergens   []string `json:"allergens"`
}

// snapshotFields are the keys a snapshot must carry to decode at all.
var snapshotFields = []string{"table_sizes", "available", "menu", "hours", "orders", "time"}

// Encode serializes the engine into the opaque snapshot blob.
func Encode(e *Engine) ([]byte, error) {
	snap := snapshot{
		TableSizes:   make(map[string]int, len(e.bands)),
		Availability: make(map[string]map[string]bool, len(e.availability)),
		Menu:         make(map[string]snapshotItem, len(e.menu)),
		Hours:        make([][2]int64, 0, len(e.hours)),
		Orders:       e.orders,
		LastAdvanced: e.lastAdvanced,
	}

	for _, band := range e.bands {
		snap.TableSizes[strconv.Itoa(band.Capacity)] = band.Count
	}
	for table, occupied := range e.availability {
		slots := make(map[string]bool, len(occupied))
		for slot, taken := range occupied {
			slots[strconv.FormatInt(int64(slot), 10)] = taken
		}
		snap.Availability[strconv.Itoa(table)] = slots
	}
	for id, item := range e.menu {
		snap.Menu[strconv.Itoa(id)] = snapshotItem{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			PrepMinutes: item.PrepMinutes,
			Allergens:   item.Allergens,
		}
	}
	for _, iv := range e.hours {
		snap.Hours = append(snap.Hours, [2]int64{int64(iv.Open), int64(iv.Close)})
	}

	return json.Marshal(snap)
}

// Decode is the inverse of Encode. Structural problems - a missing required
// field, a key that does not normalize back to an integer, a type mismatch -
// fail the decode outright instead of defaulting, since a silently
// defaulted field would desynchronize table and queue state. After a
// successful decode the queue is immediately advanced to now, before the
// engine serves any operation.
func Decode(data []byte, now time.Time) (*Engine, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	for _, field := range snapshotFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrCorruptSnapshot, field)
		}
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	sizes := make(map[int]int, len(snap.TableSizes))
	for key, count := range snap.TableSizes {
		capacity, err := normalizeKey(key, "table_sizes")
		if err != nil {
			return nil, err
		}
		sizes[capacity] = count
	}
	bands := domain.NewTableBands(sizes)

	availability := make(map[int]map[domain.Slot]bool, len(snap.Availability))
	for key, slots := range snap.Availability {
		table, err := normalizeKey(key, "available")
		if err != nil {
			return nil, err
		}
		occupied := make(map[domain.Slot]bool, len(slots))
		for slotKey, taken := range slots {
			slot, err := normalizeKey(slotKey, "available slot")
			if err != nil {
				return nil, err
			}
			occupied[domain.Slot(slot)] = taken
		}
		availability[table] = occupied
	}

	menu := make(domain.Menu, len(snap.Menu))
	for key, item := range snap.Menu {
		id, err := normalizeKey(key, "menu")
		if err != nil {
			return nil, err
		}
		menu[id] = domain.MenuItem{
			ID:          id,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			PrepMinutes: item.PrepMinutes,
			Allergens:   item.Allergens,
		}
	}

	hours := make(domain.OpeningHours, 0, len(snap.Hours))
	for _, pair := range snap.Hours {
		hours = append(hours, domain.HoursInterval{Open: domain.Slot(pair[0]), Close: domain.Slot(pair[1])})
	}

	orders := snap.Orders
	if orders == nil {
		orders = []int{}
	}

	e := &Engine{
		bands:        bands,
		hours:        hours,
		menu:         menu,
		availability: availability,
		orders:       orders,
		lastAdvanced: snap.LastAdvanced,
	}
	e.AdvanceQueue(now)
	return e, nil
}

// normalizeKey converts a portable-format string key back to the integer it
// stands for.
func normalizeKey(key, field string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: non-integer %s key %q", ErrCorruptSnapshot, field, key)
	}
	return n, nil
}
