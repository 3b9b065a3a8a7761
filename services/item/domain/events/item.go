package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemCreated is the Watermill topic published when an Item is created.
const TopicItemCreated = "item.created"

// ItemCreatedVersion is the current ItemCreatedEvent schema version.
const ItemCreatedVersion = 1

// ItemCreatedEvent is published after a new Item is stored.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated, handler).
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      string    `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}
