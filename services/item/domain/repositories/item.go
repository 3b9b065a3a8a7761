package repositories

import (
	"context"

	"github.com/ghuser/itemapi/services/item/domain/models"
)

// ItemRepository is the storage port for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
// Items are insert-only: there is no update or delete.
type ItemRepository interface {
	// Save stores a new Item. Returns ErrItemAlreadyExists if the ID is taken.
	Save(ctx context.Context, item *models.Item) error

	// GetByID returns the Item with exactly this ID, or ErrItemNotFound.
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// List returns every stored Item in insertion order.
	List(ctx context.Context) ([]*models.Item, error)
}
