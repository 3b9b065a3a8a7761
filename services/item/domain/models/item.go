package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate for this bounded context. Items are immutable
// once created.
type Item struct {
	ID          string
	Name        Text
	Description Text
	CreatedAt   time.Time
}

// NewItem constructs an Item with a random UUIDv4 ID and the current UTC time.
func NewItem(name, description Text) (*Item, error) {
	return &Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
