package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one caller's engine snapshot held between request cycles.
// State is an opaque blob owned by the engine codec; the store never
// interprets it.
type Session struct {
	ID        uuid.UUID
	State     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
