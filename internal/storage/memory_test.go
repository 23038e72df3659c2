package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/casseroll/internal/domain"
	"github.com/hammamikhairi/casseroll/internal/logger"
)

func TestMemoryStoreCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	table := &domain.Table{
		ID:        "test-table-1",
		Recipe:    domain.Recipe{Name: "Test Casserole", Profile: domain.ProfileComfort},
		Locks:     domain.LockState{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Save.
	if err := store.Save(ctx, table); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Load.
	loaded, err := store.Load(ctx, "test-table-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Recipe.Name != table.Recipe.Name {
		t.Fatalf("expected recipe %q, got %q", table.Recipe.Name, loaded.Recipe.Name)
	}

	// Load nonexistent.
	_, err = store.Load(ctx, "nonexistent")
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// List.
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 table, got %d", len(all))
	}

	// Delete.
	if err := store.Delete(ctx, "test-table-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = store.Load(ctx, "test-table-1")
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Delete nonexistent.
	if err := store.Delete(ctx, "nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	base := time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)
	tables := []*domain.Table{
		{ID: "t3", CreatedAt: base.Add(2 * time.Minute), Locks: domain.LockState{}},
		{ID: "t1", CreatedAt: base, Locks: domain.LockState{}},
		{ID: "t2", CreatedAt: base.Add(time.Minute), Locks: domain.LockState{}},
	}
	for _, tb := range tables {
		if err := store.Save(ctx, tb); err != nil {
			t.Fatalf("save %s: %v", tb.ID, err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []string{"t1", "t2", "t3"} {
		if all[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, all[i].ID)
		}
	}
}

func TestMemoryStoreCopiesTables(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	table := &domain.Table{
		ID: "copy-1",
		Recipe: domain.Recipe{Name: "Saved", Ingredients: map[domain.Category][]domain.Ingredient{
			domain.CategoryVegetables: {{ID: "vegetables-0", Name: "Frozen Peas"}},
		}},
		Locks: domain.LockState{},
	}
	if err := store.Save(ctx, table); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's table after Save must not leak into the store.
	table.Locks.Lock(domain.CategoryVegetables, 0)
	table.Recipe.Ingredients[domain.CategoryVegetables][0] = domain.Ingredient{ID: "vegetables-9"}
	table.Rolls = 7

	loaded, err := store.Load(ctx, "copy-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Locks.Count() != 0 || loaded.Rolls != 0 {
		t.Fatalf("store saw unsaved changes: locks=%d rolls=%d", loaded.Locks.Count(), loaded.Rolls)
	}
	if got := loaded.Recipe.Ingredients[domain.CategoryVegetables][0].ID; got != "vegetables-0" {
		t.Fatalf("store saw unsaved slot %s", got)
	}

	// Nor may mutating a loaded copy.
	loaded.Locks.Lock(domain.CategoryVegetables, 0)
	again, err := store.Load(ctx, "copy-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if again.Locks.Count() != 0 {
		t.Fatal("loaded copy shares locks with the store")
	}
}

// Run with -race: a reader polling List while a writer mutates and saves
// its own copy must not share any map.
func TestMemoryStoreConcurrentReaders(t *testing.T) {
	store := NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	if err := store.Save(ctx, &domain.Table{ID: "busy", Locks: domain.LockState{}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			tables, err := store.List(ctx)
			if err != nil {
				t.Errorf("list: %v", err)
				return
			}
			for _, tb := range tables {
				_ = tb.Locks.Count()
				_ = tb.Recipe.Ingredients[domain.CategoryProtein]
			}
		}
	}()

	for i := 0; i < 200; i++ {
		tb, err := store.Load(ctx, "busy")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		tb.Locks.Toggle(domain.CategoryProtein, i%3)
		tb.Recipe.Ingredients = map[domain.Category][]domain.Ingredient{
			domain.CategoryProtein: {{ID: "protein-0"}},
		}
		tb.Rolls++
		if err := store.Save(ctx, tb); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	close(done)
	wg.Wait()

	final, err := store.Load(ctx, "busy")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if final.Rolls != 200 {
		t.Fatalf("expected 200 rolls, got %d", final.Rolls)
	}
}
