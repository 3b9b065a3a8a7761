package services

import (
	"fmt"

	"github.com/ghuser/itemapi/pkg/app"
	"github.com/ghuser/itemapi/services/item/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
	// Store is the process-lifetime item store, exposed for health checks.
	Store *memory.ItemRepository
}

// New wires all item application services with infrastructure from the
// Application container. Each call owns a fresh, empty item store.
func New(a *app.Application) (*Services, error) {
	store := memory.NewItemRepository()
	var bus EventPublisher
	if a.EventBus != nil {
		bus = a.EventBus
	}
	itemSvc, err := NewItemService(store, bus, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("item service: %w", err)
	}
	return &Services{Item: itemSvc, Store: store}, nil
}
