package cart

import (
	"context"
	"testing"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("add, list and remove", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore()

		if err := store.Add(ctx, "s1", domain.CartItem{CourseID: "c1", Name: "Go", Price: 49}); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := store.Add(ctx, "s1", domain.CartItem{CourseID: "c2", Name: "SQL", Price: 39}); err != nil {
			t.Fatalf("add: %v", err)
		}

		items, err := store.Items(ctx, "s1")
		if err != nil {
			t.Fatalf("items: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}

		if err := store.Remove(ctx, "s1", "c1"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		items, _ = store.Items(ctx, "s1")
		if len(items) != 1 || items[0].CourseID != "c2" {
			t.Fatalf("expected only c2 left, got %+v", items)
		}
	})

	t.Run("adding the same course twice keeps one entry", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore()
		item := domain.CartItem{CourseID: "c1", Name: "Go", Price: 49}

		_ = store.Add(ctx, "s1", item)
		_ = store.Add(ctx, "s1", item)

		items, _ := store.Items(ctx, "s1")
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("clear empties only the given session", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore()
		_ = store.Add(ctx, "s1", domain.CartItem{CourseID: "c1"})
		_ = store.Add(ctx, "s2", domain.CartItem{CourseID: "c1"})

		if err := store.Clear(ctx, "s1"); err != nil {
			t.Fatalf("clear: %v", err)
		}
		items, _ := store.Items(ctx, "s1")
		if len(items) != 0 {
			t.Fatalf("expected empty cart, got %d items", len(items))
		}
		items, _ = store.Items(ctx, "s2")
		if len(items) != 1 {
			t.Fatalf("expected other session untouched, got %d items", len(items))
		}
	})

	t.Run("listing an unknown session returns empty", func(t *testing.T) {
		t.Parallel()
		store := NewMemoryStore()
		items, err := store.Items(ctx, "missing")
		if err != nil {
			t.Fatalf("items: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected empty cart, got %d items", len(items))
		}
	})
}
