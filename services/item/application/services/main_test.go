package services

import (
	"context"
	"testing"

	"github.com/ghuser/itemapi/pkg/app"
)

func TestNew_OwnsStore(t *testing.T) {
	svcs, err := New(&app.Application{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if svcs.Store == nil {
		t.Fatal("expected a store")
	}
	if err := svcs.Store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if _, err := svcs.Item.Create(context.Background(), "Widget", "A small widget"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := svcs.Store.Count(); got != 1 {
		t.Errorf("store count: got %d, want 1", got)
	}

	other, err := New(&app.Application{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := other.Store.Count(); got != 0 {
		t.Errorf("second container shares state: count %d", got)
	}
}
