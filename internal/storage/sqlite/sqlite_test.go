package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedList(t *testing.T, store *SQLiteStore) (*models.User, *models.List) {
	t.Helper()
	ctx := context.Background()

	user := models.NewUser("alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	list := &models.List{UserID: user.ID, Name: "Groceries"}
	if err := store.CreateList(ctx, list); err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	return user, list
}

func TestSQLiteStore_Items(t *testing.T) {
	store := newTestStore(t)
	_, list := seedList(t, store)
	ctx := context.Background()

	names := []struct {
		name     string
		category string
		order    int
	}{
		{"Butter", "dairy", 2},
		{"Eggs", "dairy", 0},
		{"Bread", "bakery", 1},
	}
	created := make(map[string]*models.Item)
	for _, n := range names {
		item := &models.Item{ListID: list.ID, Name: n.name, Category: n.category, Order: n.order, Quantity: 1}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		if item.ID == "" {
			t.Fatal("Expected item ID to be generated")
		}
		created[n.name] = item
	}

	t.Run("ListItems sorts by order", func(t *testing.T) {
		items, err := store.ListItems(ctx, list.ID, storage.ItemFilter{})
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		want := []string{"Eggs", "Bread", "Butter"}
		if len(items) != len(want) {
			t.Fatalf("Expected %d items, got %d", len(want), len(items))
		}
		for i, name := range want {
			if items[i].Name != name {
				t.Errorf("items[%d] = %s, want %s", i, items[i].Name, name)
			}
		}
	})

	t.Run("ListItems filters by category", func(t *testing.T) {
		items, err := store.ListItems(ctx, list.ID, storage.ItemFilter{Category: "dairy"})
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("Expected 2 dairy items, got %d", len(items))
		}
	})

	t.Run("UpdateItem applies partial patch", func(t *testing.T) {
		missing := true
		comment := "organic"
		updated, err := store.UpdateItem(ctx, list.ID, created["Eggs"].ID, models.ItemPatch{
			Missing: &missing,
			Comment: &comment,
		})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if !updated.Missing || updated.Completed {
			t.Errorf("Expected missing without completed, got missing=%v completed=%v", updated.Missing, updated.Completed)
		}
		if updated.Comment != "organic" || updated.Name != "Eggs" {
			t.Errorf("Unexpected item after update: %+v", updated)
		}
	})

	t.Run("UpdateItem in wrong list is not found", func(t *testing.T) {
		name := "x"
		_, err := store.UpdateItem(ctx, "other-list", created["Eggs"].ID, models.ItemPatch{Name: &name})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("SetItemOrders is atomic", func(t *testing.T) {
		err := store.SetItemOrders(ctx, list.ID, []models.ItemOrder{
			{ID: created["Butter"].ID, Order: 0},
			{ID: "nonexistent", Order: 1},
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
		items, _ := store.ListItems(ctx, list.ID, storage.ItemFilter{})
		if items[0].Name != "Eggs" {
			t.Errorf("Order changed despite failed batch: first item %s", items[0].Name)
		}

		err = store.SetItemOrders(ctx, list.ID, []models.ItemOrder{
			{ID: created["Bread"].ID, Order: 0},
			{ID: created["Eggs"].ID, Order: 1},
			{ID: created["Butter"].ID, Order: 2},
		})
		if err != nil {
			t.Fatalf("SetItemOrders failed: %v", err)
		}
		items, _ = store.ListItems(ctx, list.ID, storage.ItemFilter{})
		if items[0].Name != "Bread" {
			t.Errorf("Expected Bread first, got %s", items[0].Name)
		}
	})

	t.Run("DeleteItem", func(t *testing.T) {
		if err := store.DeleteItem(ctx, list.ID, created["Bread"].ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		if err := store.DeleteItem(ctx, list.ID, created["Bread"].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestSQLiteStore_Lists(t *testing.T) {
	store := newTestStore(t)
	user, list := seedList(t, store)
	ctx := context.Background()

	if list.DefaultColor != models.DefaultColor {
		t.Errorf("Expected default color %s, got %s", models.DefaultColor, list.DefaultColor)
	}

	list.Completed = true
	list.FinishedAt = 1700000000
	list.Name = "Done"
	if err := store.UpdateList(ctx, list); err != nil {
		t.Fatalf("UpdateList failed: %v", err)
	}

	got, err := store.GetList(ctx, list.ID)
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	if !got.Completed || got.FinishedAt != 1700000000 || got.Name != "Done" {
		t.Errorf("Unexpected list after update: %+v", got)
	}

	lists, err := store.ListListsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListListsByUser failed: %v", err)
	}
	if len(lists) != 1 {
		t.Errorf("Expected 1 list, got %d", len(lists))
	}

	item := &models.Item{ListID: list.ID, Name: "Milk", Quantity: 1}
	if err := store.CreateItem(ctx, item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if err := store.DeleteList(ctx, list.ID); err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}
	items, err := store.ListItems(ctx, list.ID, storage.ItemFilter{})
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected items to cascade, got %d", len(items))
	}
	if _, err := store.GetList(ctx, list.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_Personalization(t *testing.T) {
	store := newTestStore(t)
	user, _ := seedList(t, store)
	ctx := context.Background()

	doc, err := store.GetPersonalization(ctx, user.ID)
	if err != nil || doc != nil {
		t.Fatalf("Expected no document yet, got %+v, %v", doc, err)
	}

	names, err := store.LoadNameCategoryMap(ctx, user.ID)
	if err != nil {
		t.Fatalf("LoadNameCategoryMap failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected empty map, got %v", names)
	}

	_, err = store.SavePersonalization(ctx, &models.Personalization{
		UserID:     user.ID,
		Categories: []models.Category{{Value: "pets", Label: "Pets", Icon: "favorite"}},
	})
	if err != nil {
		t.Fatalf("SavePersonalization failed: %v", err)
	}

	saved, err := store.SaveNameCategoryMap(ctx, user.ID, models.NameCategoryMap{"milk": "groceries"})
	if err != nil {
		t.Fatalf("SaveNameCategoryMap failed: %v", err)
	}
	if saved["milk"] != "groceries" {
		t.Errorf("Unexpected saved map: %v", saved)
	}

	doc, err = store.GetPersonalization(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetPersonalization failed: %v", err)
	}
	if len(doc.Categories) != 1 || doc.Categories[0].Icon != "favorite" {
		t.Errorf("Categories lost by map save: %+v", doc.Categories)
	}
	if doc.Templates != nil {
		t.Errorf("Expected templates to stay unset, got %+v", doc.Templates)
	}
	if doc.NameCategoryMap["milk"] != "groceries" {
		t.Errorf("Unexpected map: %v", doc.NameCategoryMap)
	}
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	user, list := seedList(t, store)
	ctx := context.Background()

	got, err := store.GetUserByUsername(ctx, "alice")
	if err != nil || got == nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, user.ID)
	}

	missing, err := store.GetUserByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for unknown user, got %+v, %v", missing, err)
	}

	got.Bio = "likes lists"
	if err := store.UpdateUser(ctx, got); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	reloaded, _ := store.GetUserByID(ctx, user.ID)
	if reloaded.Bio != "likes lists" {
		t.Errorf("Bio not saved: %q", reloaded.Bio)
	}

	if err := store.CreateUser(ctx, models.NewUser("alice", "hash")); err == nil {
		t.Error("Expected duplicate username to fail")
	}

	if err := store.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := store.GetList(ctx, list.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected list to cascade, got %v", err)
	}
}
