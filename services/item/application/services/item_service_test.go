package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemapi/pkg/config"
	"github.com/ghuser/itemapi/pkg/logger"
	itemdomain "github.com/ghuser/itemapi/services/item/domain"
	domainevents "github.com/ghuser/itemapi/services/item/domain/events"
	"github.com/ghuser/itemapi/services/item/infrastructure/persistence/memory"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	msgs   []*message.Message
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	for _, m := range msgs {
		p.topics = append(p.topics, topic)
		p.msgs = append(p.msgs, m)
	}
	return nil
}

func discardLogger() logger.Logger {
	return logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
}

func newTestService(t *testing.T, pub EventPublisher) (*ItemService, *memory.ItemRepository) {
	t.Helper()
	repo := memory.NewItemRepository()
	svc, err := NewItemService(repo, pub, discardLogger())
	if err != nil {
		t.Fatalf("NewItemService: %v", err)
	}
	return svc, repo
}

func TestItemService_Create(t *testing.T) {
	pub := &recordingPublisher{}
	svc, repo := newTestService(t, pub)

	item, err := svc.Create(context.Background(), "Widget", "A small widget")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == "" || item.Name != "Widget" || item.Description != "A small widget" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if repo.Count() != 1 {
		t.Fatalf("expected 1 stored item, got %d", repo.Count())
	}

	if len(pub.msgs) != 1 || pub.topics[0] != domainevents.TopicItemCreated {
		t.Fatalf("expected one %s event, got topics %v", domainevents.TopicItemCreated, pub.topics)
	}
	var evt domainevents.ItemCreatedEvent
	if err := json.Unmarshal(pub.msgs[0].Payload, &evt); err != nil {
		t.Fatalf("event payload: %v", err)
	}
	if evt.ItemID != item.ID || evt.Name != "Widget" || evt.Version != 1 {
		t.Fatalf("unexpected event: %+v", evt)
	}
	if pub.msgs[0].Metadata.Get("event_id") != evt.EventID.String() {
		t.Errorf("event_id metadata mismatch")
	}
}

func TestItemService_Create_MissingFields(t *testing.T) {
	tests := []struct {
		name, itemName, description string
	}{
		{"empty name", "", "d"},
		{"empty description", "n", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &recordingPublisher{}
			svc, repo := newTestService(t, pub)

			_, err := svc.Create(context.Background(), tt.itemName, tt.description)
			if !errors.Is(err, itemdomain.ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
			if repo.Count() != 0 {
				t.Fatalf("expected nothing stored, got %d", repo.Count())
			}
			if len(pub.msgs) != 0 {
				t.Fatalf("expected no events, got %d", len(pub.msgs))
			}
		})
	}
}

func TestItemService_Create_PublishFailureStillSucceeds(t *testing.T) {
	svc, repo := newTestService(t, &recordingPublisher{err: errors.New("bus closed")})

	item, err := svc.Create(context.Background(), "Widget", "A small widget")
	if err != nil {
		t.Fatalf("expected success despite publish failure, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), item.ID); err != nil {
		t.Fatalf("item not stored: %v", err)
	}
}

func TestItemService_Create_NilPublisher(t *testing.T) {
	svc, _ := newTestService(t, nil)
	if _, err := svc.Create(context.Background(), "Widget", "A small widget"); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestItemService_GetByID(t *testing.T) {
	svc, _ := newTestService(t, nil)
	created, _ := svc.Create(context.Background(), "Widget", "A small widget")

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name {
		t.Fatalf("got %+v, want %+v", got, created)
	}

	if _, err := svc.GetByID(context.Background(), "does-not-exist"); !errors.Is(err, itemdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemService_List(t *testing.T) {
	svc, _ := newTestService(t, nil)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}

	first, _ := svc.Create(context.Background(), "first", "1")
	second, _ := svc.Create(context.Background(), "second", "2")

	items, _ = svc.List(context.Background())
	if len(items) != 2 || items[0].ID != first.ID || items[1].ID != second.ID {
		t.Fatalf("unexpected list order: %+v", items)
	}
}
