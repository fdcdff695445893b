package main

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"
)

func newCartStore() *Store[CartItem] {
	return NewStore(func(item CartItem) string { return item.Name })
}

func TestStore_AppendKeepsInsertionOrder(t *testing.T) {
	s := NewStore[Appointment](nil)
	for _, id := range []int64{3, 1, 2} {
		got := s.Append(Appointment{ID: id})
		if got.ID != id {
			t.Fatalf("Append returned id %d, want %d", got.ID, id)
		}
	}

	list := s.List()
	if len(list) != 3 || list[0].ID != 3 || list[1].ID != 1 || list[2].ID != 2 {
		t.Fatalf("unexpected order: %+v", list)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
}

func TestStore_ListIsACopy(t *testing.T) {
	s := newCartStore()
	s.Append(CartItem{Name: "Aspirin", Quantity: 1})

	list := s.List()
	list[0].Quantity = 99

	if got := s.List()[0].Quantity; got != 1 {
		t.Fatalf("store mutated through List result: quantity=%d", got)
	}
}

func TestStore_EmptyListIsNotNil(t *testing.T) {
	if got := NewStore[ContactMessage](nil).List(); got == nil {
		t.Fatal("List on empty store returned nil")
	}
}

func TestStore_FindIndexByKey(t *testing.T) {
	s := newCartStore()
	s.Append(CartItem{Name: "Aspirin"})
	s.Append(CartItem{Name: "Vitamin C"})

	t.Run("present", func(t *testing.T) {
		i, ok := s.FindIndexByKey("Vitamin C")
		if !ok || i != 1 {
			t.Fatalf("got (%d,%v), want (1,true)", i, ok)
		}
	})

	t.Run("absent", func(t *testing.T) {
		i, ok := s.FindIndexByKey("Ibuprofen")
		if ok || i != -1 {
			t.Fatalf("got (%d,%v), want (-1,false)", i, ok)
		}
	})

	t.Run("no key func", func(t *testing.T) {
		plain := NewStore[CartItem](nil)
		plain.Append(CartItem{Name: "Aspirin"})
		if _, ok := plain.FindIndexByKey("Aspirin"); ok {
			t.Fatal("append-only store should never find by key")
		}
	})
}

func TestStore_UpsertByKey(t *testing.T) {
	s := newCartStore()

	first, merged := s.UpsertByKey(CartItem{Name: "Aspirin", Price: 5.5, Quantity: 2}, incrementQuantity)
	if merged || first.Quantity != 2 {
		t.Fatalf("first upsert: got %+v merged=%v", first, merged)
	}

	second, merged := s.UpsertByKey(CartItem{Name: "Aspirin", Price: 9, Image: "x.png", Quantity: 3}, incrementQuantity)
	if !merged {
		t.Fatal("second upsert should merge")
	}
	if second.Quantity != 5 || second.Price != 5.5 || second.Image != "" {
		t.Fatalf("merge kept wrong fields: %+v", second)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	s.UpsertByKey(CartItem{Name: "Vitamin C", Quantity: 1}, incrementQuantity)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestStore_UpsertWithoutKeyAppends(t *testing.T) {
	s := NewStore[CartItem](nil)
	s.UpsertByKey(CartItem{Name: "Aspirin", Quantity: 1}, incrementQuantity)
	_, merged := s.UpsertByKey(CartItem{Name: "Aspirin", Quantity: 1}, incrementQuantity)
	if merged || s.Len() != 2 {
		t.Fatalf("merged=%v len=%d, want appended twice", merged, s.Len())
	}
}

func TestStore_ConcurrentUpsertLosesNoIncrements(t *testing.T) {
	s := newCartStore()

	const N = 200
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < N; i++ {
		g.Go(func() error {
			s.UpsertByKey(CartItem{Name: "Aspirin", Quantity: 1}, incrementQuantity)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent upsert failed: %v", err)
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 item, got %d", len(list))
	}
	if list[0].Quantity != N {
		t.Fatalf("expected quantity=%d, got=%d", N, list[0].Quantity)
	}
}

func TestIncrementQuantity_Saturates(t *testing.T) {
	got := incrementQuantity(CartItem{Name: "Aspirin", Quantity: maxQuantity}, CartItem{Name: "Aspirin", Quantity: 1})
	if got.Quantity != maxQuantity {
		t.Fatalf("quantity = %d, want %d", got.Quantity, maxQuantity)
	}

	got = incrementQuantity(CartItem{Quantity: maxQuantity - 1}, CartItem{Quantity: maxQuantity})
	if got.Quantity != maxQuantity || got.Quantity < 0 {
		t.Fatalf("quantity = %d, want %d", got.Quantity, maxQuantity)
	}
}
