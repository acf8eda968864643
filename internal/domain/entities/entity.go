package entities

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity shared by every entity: an immutable id, an
// immutable creation timestamp, and a last-updated timestamp refreshed on
// every successful mutation.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBase creates the identity fields for a new entity.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. The new value is always strictly after the
// previous one, even when the wall clock has not advanced between mutations.
func (b *Base) Touch() {
	now := time.Now().UTC()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Nanosecond)
	}
	b.UpdatedAt = now
}
