// Package memory holds the process-lifetime Item store. Nothing survives a
// restart.
package memory

import (
	"context"
	"sync"

	itemdomain "github.com/ghuser/itemapi/services/item/domain"
	"github.com/ghuser/itemapi/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository with a mutex-guarded
// map plus an insertion-order index. Items are copied on the way in and out,
// so callers never share memory with the store.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]models.Item
	order []string
}

// NewItemRepository returns an empty ItemRepository.
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[string]models.Item)}
}

// Save stores a new Item. Returns ErrItemAlreadyExists if the ID is taken;
// the existing item is left untouched.
func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return itemdomain.ErrItemAlreadyExists
	}
	r.items[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

// GetByID returns the Item with exactly this ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(_ context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, itemdomain.ErrItemNotFound
	}
	return &item, nil
}

// List returns all items in insertion order. The result is never nil.
func (r *ItemRepository) List(_ context.Context) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.Item, len(r.order))
	for i, id := range r.order {
		item := r.items[id]
		items[i] = &item
	}
	return items, nil
}

// Count returns the number of stored items.
func (r *ItemRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Ping always succeeds; it lets the store sit in the health report next to
// the other components.
func (r *ItemRepository) Ping(_ context.Context) error {
	return nil
}
