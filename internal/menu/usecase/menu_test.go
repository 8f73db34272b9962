package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-ordering-assistant/internal/menu"
	"restaurant-ordering-assistant/pkg/log"
)

type mockRepo struct {
	items []menu.Item
	err   error
	calls int
}

func (m *mockRepo) ListMenuItems(ctx context.Context) ([]menu.Item, error) {
	m.calls++
	return m.items, m.err
}

func (m *mockRepo) Source() string { return "mock.json" }

func TestGetMenu(t *testing.T) {
	ctx := context.Background()

	t.Run("caches catalog", func(t *testing.T) {
		repo := &mockRepo{items: []menu.Item{{Name: "Pizza", Price: 200}}}
		uc := New(repo, time.Minute, log.NewNop())

		for i := 0; i < 3; i++ {
			m, err := uc.GetMenu(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(m.Items) != 1 || m.Items[0].Name != "Pizza" {
				t.Fatalf("unexpected menu: %+v", m)
			}
		}
		if repo.calls != 1 {
			t.Errorf("expected 1 repository call, got %d", repo.calls)
		}
	})

	t.Run("no cache when ttl is zero", func(t *testing.T) {
		repo := &mockRepo{items: []menu.Item{{Name: "Pizza"}}}
		uc := New(repo, 0, log.NewNop())

		uc.GetMenu(ctx)
		uc.GetMenu(ctx)
		if repo.calls != 2 {
			t.Errorf("expected 2 repository calls, got %d", repo.calls)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		repo := &mockRepo{err: menu.ErrMenuUnavailable}
		uc := New(repo, time.Minute, log.NewNop())

		if _, err := uc.GetMenu(ctx); !errors.Is(err, menu.ErrMenuUnavailable) {
			t.Fatalf("expected ErrMenuUnavailable, got %v", err)
		}
		repo.err = nil
		repo.items = []menu.Item{{Name: "Naan"}}
		m, err := uc.GetMenu(ctx)
		if err != nil || len(m.Items) != 1 {
			t.Fatalf("expected recovery, got %+v %v", m, err)
		}
	})

	t.Run("caller cannot mutate cached catalog", func(t *testing.T) {
		repo := &mockRepo{items: []menu.Item{{Name: "Pizza", Price: 200}}}
		uc := New(repo, time.Minute, log.NewNop())

		m, _ := uc.GetMenu(ctx)
		m.Items[0].Price = 1
		m2, _ := uc.GetMenu(ctx)
		if m2.Items[0].Price != 200 {
			t.Errorf("cached catalog was mutated: %v", m2.Items[0].Price)
		}
	})
}

func TestFindItem(t *testing.T) {
	repo := &mockRepo{items: []menu.Item{{Name: "Margherita Pizza", Price: 250}}}
	uc := New(repo, time.Minute, log.NewNop())

	item, err := uc.FindItem(context.Background(), "  margherita PIZZA ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Price != 250 {
		t.Errorf("unexpected item: %+v", item)
	}

	if _, err := uc.FindItem(context.Background(), "Sushi"); !errors.Is(err, menu.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
