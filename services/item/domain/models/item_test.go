package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewItem(t *testing.T) {
	name := Text("Widget")
	description := Text("A small widget")

	t.Run("returns item with a UUID ID", func(t *testing.T) {
		item, err := NewItem(name, description)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(item.ID); err != nil {
			t.Fatalf("expected UUID ID, got %q: %v", item.ID, err)
		}
	})

	t.Run("sets Name and Description", func(t *testing.T) {
		item, err := NewItem(name, description)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != name || item.Description != description {
			t.Fatalf("unexpected fields: %+v", item)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewItem(name, description)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreatedAt.Location() != time.UTC {
			t.Fatalf("expected UTC, got %v", item.CreatedAt.Location())
		}
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			item, _ := NewItem(name, description)
			if _, dup := seen[item.ID]; dup {
				t.Fatalf("duplicate ID %q", item.ID)
			}
			seen[item.ID] = struct{}{}
		}
	})
}
