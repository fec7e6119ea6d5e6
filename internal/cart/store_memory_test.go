package cart_test

import (
	"context"
	"reflect"
	"testing"

	"SkiShop/internal/cart"
)

func TestMemStore_AddKeepsOrderAndDuplicates(t *testing.T) {
	s := cart.NewMemStore()
	ctx := context.Background()

	for _, id := range []int{2, 1, 2} {
		if err := s.Add(ctx, "user@example.com", id); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := s.List(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []int{2, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("list=%v want=%v", got, want)
	}
}

func TestMemStore_RemoveAllOccurrences(t *testing.T) {
	s := cart.NewMemStore()
	ctx := context.Background()

	for _, id := range []int{5, 7, 5, 5, 9} {
		_ = s.Add(ctx, "u", id)
	}

	if err := s.RemoveAll(ctx, "u", 5); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}

	got, _ := s.List(ctx, "u")
	if want := []int{7, 9}; !reflect.DeepEqual(got, want) {
		t.Fatalf("list=%v want=%v", got, want)
	}
}

func TestMemStore_RemoveAllWithoutEntry(t *testing.T) {
	s := cart.NewMemStore()

	if err := s.RemoveAll(context.Background(), "nobody", 1); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
}

func TestMemStore_ListIsACopy(t *testing.T) {
	s := cart.NewMemStore()
	ctx := context.Background()

	_ = s.Add(ctx, "u", 1)

	got, _ := s.List(ctx, "u")
	got[0] = 99

	again, _ := s.List(ctx, "u")
	if want := []int{1}; !reflect.DeepEqual(again, want) {
		t.Fatalf("list=%v want=%v", again, want)
	}
}

func TestMemStore_UsersAreIsolated(t *testing.T) {
	s := cart.NewMemStore()
	ctx := context.Background()

	_ = s.Add(ctx, "a", 1)
	_ = s.Add(ctx, "b", 2)

	got, _ := s.List(ctx, "a")
	if want := []int{1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("list=%v want=%v", got, want)
	}
}
