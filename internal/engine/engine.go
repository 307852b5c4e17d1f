// Package engine implements the venue scheduling core: table availability,
// the food preparation queue and the snapshot codec. The engine is passive
// and synchronous - it performs no I/O and owns no storage lifecycle. A host
// embedding it must treat one snapshot as a single exclusively-owned
// resource: the availability check and the booking commit are not atomic
// across concurrent callers against the same snapshot.
package engine

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Engine is the full scheduling state for one venue session.
type Engine struct {
	bands domain.TableBands
	hours domain.OpeningHours
	menu  domain.Menu

	// availability maps table index → occupied slots. An absent slot key
	// means the table is free for that slot.
	availability map[int]map[domain.Slot]bool

	// orders is the FIFO preparation queue: one menu item id per ordered
	// unit, head currently preparing.
	orders []int

	// lastAdvanced is the unix timestamp the queue was last advanced to.
	lastAdvanced int64
}

// New builds a fresh engine from the venue configuration. The queue starts
// empty and every table fully free.
func New(venue domain.VenueConfig, now time.Time) *Engine {
	availability := make(map[int]map[domain.Slot]bool, venue.Bands.TotalTables())
	for i := 0; i < venue.Bands.TotalTables(); i++ {
		availability[i] = make(map[domain.Slot]bool)
	}
	return &Engine{
		bands:        venue.Bands,
		hours:        venue.Hours,
		menu:         venue.Menu,
		availability: availability,
		orders:       []int{},
		lastAdvanced: now.Unix(),
	}
}

// Menu returns the read-only menu view keyed by item id.
func (e *Engine) Menu() domain.Menu {
	return e.menu
}

// QueueLength returns the number of units currently in the preparation queue.
func (e *Engine) QueueLength() int {
	return len(e.orders)
}

// RecommendationData is the pass-through payload for an external
// recommender: the full menu plus the caller's echoed preferences, context
// and allergies. The engine performs no recommendation logic itself.
type RecommendationData struct {
	Menu        domain.Menu
	Preferences []string
	Context     string
	Allergies   []string
}

// RecommendationData assembles the recommend payload.
func (e *Engine) RecommendationData(preferences []string, context string, allergies []string) RecommendationData {
	if preferences == nil {
		preferences = []string{}
	}
	if allergies == nil {
		allergies = []string{}
	}
	return RecommendationData{
		Menu:        e.menu,
		Preferences: preferences,
		Context:     context,
		Allergies:   allergies,
	}
}
