package models

import (
	"strings"
	"testing"
)

func TestNewText(t *testing.T) {
	t.Run("single character", func(t *testing.T) {
		v, err := NewText("a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.String() != "a" {
			t.Fatalf("expected %q, got %q", "a", v.String())
		}
	})

	t.Run("no upper length bound", func(t *testing.T) {
		s := strings.Repeat("x", 10_000)
		v, err := NewText(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(v.String()) != len(s) {
			t.Fatalf("expected length %d, got %d", len(s), len(v.String()))
		}
	})

	t.Run("whitespace is kept verbatim", func(t *testing.T) {
		v, err := NewText("  padded  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.String() != "  padded  " {
			t.Fatalf("expected value unchanged, got %q", v.String())
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := NewText(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
