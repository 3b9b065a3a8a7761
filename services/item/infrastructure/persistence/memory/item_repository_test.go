package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	itemdomain "github.com/ghuser/itemapi/services/item/domain"
	"github.com/ghuser/itemapi/services/item/domain/models"
)

func newItem(t *testing.T, name string) *models.Item {
	t.Helper()
	item, err := models.NewItem(models.Text(name), models.Text(name+" description"))
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	return item
}

func TestItemRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	item := newItem(t, "Widget")

	if err := repo.Save(ctx, item); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != item.ID || got.Name != item.Name || got.Description != item.Description {
		t.Fatalf("got %+v, want %+v", got, item)
	}
	if !got.CreatedAt.Equal(item.CreatedAt) {
		t.Fatalf("CreatedAt: got %v, want %v", got.CreatedAt, item.CreatedAt)
	}
}

func TestItemRepository_GetByID_NotFound(t *testing.T) {
	repo := NewItemRepository()
	_ = repo.Save(context.Background(), newItem(t, "Widget"))

	for _, id := range []string{"does-not-exist", "", "Widget"} {
		if _, err := repo.GetByID(context.Background(), id); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Errorf("GetByID(%q): got %v, want ErrItemNotFound", id, err)
		}
	}
}

func TestItemRepository_GetByID_NoPrefixMatch(t *testing.T) {
	repo := NewItemRepository()
	item := newItem(t, "Widget")
	_ = repo.Save(context.Background(), item)

	if _, err := repo.GetByID(context.Background(), item.ID[:8]); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected prefix lookup to miss, got %v", err)
	}
}

func TestItemRepository_Save_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	item := newItem(t, "first")
	_ = repo.Save(ctx, item)

	dup := &models.Item{ID: item.ID, Name: "second", Description: "second", CreatedAt: time.Now().UTC()}
	if err := repo.Save(ctx, dup); !errors.Is(err, itemdomain.ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}

	got, _ := repo.GetByID(ctx, item.ID)
	if got.Name != "first" {
		t.Fatalf("existing item was overwritten: %+v", got)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected count 1, got %d", repo.Count())
	}
}

func TestItemRepository_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	empty, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}

	var ids []string
	for i := range 20 {
		item := newItem(t, fmt.Sprintf("item-%d", i))
		ids = append(ids, item.ID)
		if err := repo.Save(ctx, item); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	for range 3 {
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(items) != len(ids) {
			t.Fatalf("expected %d items, got %d", len(ids), len(items))
		}
		for i, item := range items {
			if item.ID != ids[i] {
				t.Fatalf("position %d: got %s, want %s", i, item.ID, ids[i])
			}
		}
	}
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()
	item := newItem(t, "Widget")
	_ = repo.Save(ctx, item)

	item.Name = "mutated after save"
	got, _ := repo.GetByID(ctx, item.ID)
	got.Description = "mutated after get"

	again, _ := repo.GetByID(ctx, item.ID)
	if again.Name != "Widget" || again.Description != "Widget description" {
		t.Fatalf("store shares memory with callers: %+v", again)
	}
}

func TestItemRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				item, _ := models.NewItem(models.Text(fmt.Sprintf("w%d-%d", w, i)), "d")
				if err := repo.Save(ctx, item); err != nil {
					t.Errorf("Save: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for range perWriter {
				items, _ := repo.List(ctx)
				for _, it := range items {
					if it.ID == "" || it.Name == "" || it.CreatedAt.IsZero() {
						t.Errorf("observed partially constructed item: %+v", it)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	if got := repo.Count(); got != writers*perWriter {
		t.Fatalf("expected %d items, got %d", writers*perWriter, got)
	}
}
