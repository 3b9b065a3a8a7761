package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemapi/pkg/app"
	itemEvents "github.com/ghuser/itemapi/services/item/domain/events"
)

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, itemEvents.TopicItemCreated, handleItemCreated(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", itemEvents.TopicItemCreated,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{itemEvents.TopicItemCreated})
	return nil
}

// handleItemCreated returns the audit handler for item.created events.
// It only logs, so redelivery after a retry is harmless.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", itemEvents.TopicItemCreated, err)
		}
		if evt.Version != itemEvents.ItemCreatedVersion {
			a.Logger.WarnContext(ctx, "unexpected item.created schema version",
				"version", evt.Version, "event_id", evt.EventID)
		}

		a.Logger.InfoContext(ctx, "item.created event received",
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"name", evt.Name,
			"occurred_at", evt.OccurredAt,
		)
		return nil
	}
}
