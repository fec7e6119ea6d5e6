package cart_test

import (
	"context"
	"reflect"
	"testing"

	"SkiShop/internal/cart"
	"SkiShop/internal/catalog"
)

func newLedger(t *testing.T) (*cart.Ledger, cart.Store) {
	t.Helper()

	cat, err := catalog.NewStore([]catalog.Product{
		{ID: 1, Name: "Skis", Category: "skis", PriceCents: 1000},
		{ID: 2, Name: "Boots", Category: "boots", PriceCents: 2500},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	store := cart.NewMemStore()
	return &cart.Ledger{Store: store, Catalog: cat}, store
}

func TestMaterialize_JoinsAndTotals(t *testing.T) {
	l, store := newLedger(t)
	ctx := context.Background()

	// Duplicate adds stand for quantity and each contributes to the total.
	for _, id := range []int{1, 2, 1} {
		_ = store.Add(ctx, "u", id)
	}

	items, total, err := l.Materialize(ctx, "u")
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}

	gotIDs := make([]int, 0, len(items))
	for _, p := range items {
		gotIDs = append(gotIDs, p.ID)
	}
	if want := []int{1, 2, 1}; !reflect.DeepEqual(gotIDs, want) {
		t.Fatalf("items=%v want=%v", gotIDs, want)
	}
	if total != 4500 {
		t.Fatalf("total=%d want=4500", total)
	}
}

func TestMaterialize_SkipsDanglingIDs(t *testing.T) {
	l, store := newLedger(t)
	ctx := context.Background()

	_ = store.Add(ctx, "u", 1)
	_ = store.Add(ctx, "u", 42) // never in the catalog

	items, total, err := l.Materialize(ctx, "u")
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("items=%+v", items)
	}
	if total != 1000 {
		t.Fatalf("total=%d want=1000", total)
	}
}

func TestMaterialize_EmptyCart(t *testing.T) {
	l, _ := newLedger(t)

	items, total, err := l.Materialize(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Fatalf("items=%v total=%d", items, total)
	}
}

func TestMaterialize_RemoveAllThenEmpty(t *testing.T) {
	l, store := newLedger(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_ = store.Add(ctx, "u", 1)
	}
	_ = store.RemoveAll(ctx, "u", 1)

	items, total, err := l.Materialize(ctx, "u")
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Fatalf("items=%v total=%d after remove-all", items, total)
	}
}
