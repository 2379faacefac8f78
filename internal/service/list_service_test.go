package service

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/catalog"
	"github.com/mmynk/shoplist/internal/middleware"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage/sqlite"
	"github.com/mmynk/shoplist/pkg/api"
)

// failingItems fails every CreateItem after the first n succeed.
type failingItems struct {
	*sqlite.SQLiteStore
	n int
}

func (f *failingItems) CreateItem(ctx context.Context, item *models.Item) error {
	if f.n == 0 {
		return errors.New("disk full")
	}
	f.n--
	return f.SQLiteStore.CreateItem(ctx, item)
}

func TestCreateList_WithTemplate(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.lists.CreateList(context.Background(), connect.NewRequest(&api.CreateListRequest{
		Name:         "  Saturday  ",
		DefaultColor: "#00ff00",
		TemplateName: "weekly groceries",
	}))
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	list := resp.Msg.List
	if list.Name != "Saturday" {
		t.Errorf("expected trimmed name, got %q", list.Name)
	}
	if len(resp.Msg.Items) != 3 {
		t.Fatalf("expected 3 template items, got %d", len(resp.Msg.Items))
	}
	for i, item := range resp.Msg.Items {
		if item.Order != i {
			t.Errorf("item %s: expected order %d, got %d", item.Name, i, item.Order)
		}
		if item.Color != "#00ff00" {
			t.Errorf("item %s: expected list color, got %s", item.Name, item.Color)
		}
	}
	if resp.Msg.Items[2].Quantity != 12 {
		t.Errorf("expected Eggs quantity 12, got %d", resp.Msg.Items[2].Quantity)
	}

	names := env.itemNames(t, list.ID)
	if len(names) != 3 || names[0] != "Milk" {
		t.Errorf("unexpected stored items: %v", names)
	}
}

func TestCreateList_TemplateFailureRemovesList(t *testing.T) {
	env := setupTestServer(t)
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	svc := NewListService(&failingItems{SQLiteStore: env.store, n: 1}, cat)
	ctx := middleware.WithUser(context.Background(), env.user.ID, env.user.Username)

	_, err = svc.CreateList(ctx, connect.NewRequest(&api.CreateListRequest{
		Name:         "Saturday",
		TemplateName: "weekly groceries",
	}))
	assertCode(t, err, connect.CodeInternal)

	lists, err := env.store.ListListsByUser(ctx, env.user.ID)
	if err != nil {
		t.Fatalf("ListListsByUser failed: %v", err)
	}
	if len(lists) != 0 {
		t.Errorf("expected the partially seeded list to be removed, got %d lists", len(lists))
	}
}

func TestCreateList_Validation(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.lists.CreateList(ctx, connect.NewRequest(&api.CreateListRequest{Name: "   "}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = env.lists.CreateList(ctx, connect.NewRequest(&api.CreateListRequest{Name: "x", TemplateName: "nope"}))
	assertCode(t, err, connect.CodeNotFound)

	lists, err := env.lists.ListLists(ctx, connect.NewRequest(&api.ListListsRequest{}))
	if err != nil {
		t.Fatalf("ListLists failed: %v", err)
	}
	if len(lists.Msg.Lists) != 0 {
		t.Errorf("expected no list after failed creates, got %d", len(lists.Msg.Lists))
	}
}

func TestCreateList_DefaultColor(t *testing.T) {
	env := setupTestServer(t)

	list := env.createList(t, "Groceries")

	if list.DefaultColor != models.DefaultColor {
		t.Errorf("expected default color %s, got %s", models.DefaultColor, list.DefaultColor)
	}
}

func TestUpdateList_CompleteAndReopen(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	list := env.createList(t, "Groceries")

	completed := true
	resp, err := env.lists.UpdateList(ctx, connect.NewRequest(&api.UpdateListRequest{
		ListID:    list.ID,
		Completed: &completed,
	}))
	if err != nil {
		t.Fatalf("UpdateList failed: %v", err)
	}
	if !resp.Msg.List.Completed || resp.Msg.List.FinishedAt == 0 {
		t.Errorf("expected completed list with finishedAt, got %+v", resp.Msg.List)
	}

	reopen := false
	name := "Groceries 2"
	resp, err = env.lists.UpdateList(ctx, connect.NewRequest(&api.UpdateListRequest{
		ListID:    list.ID,
		Name:      &name,
		Completed: &reopen,
	}))
	if err != nil {
		t.Fatalf("UpdateList failed: %v", err)
	}
	if resp.Msg.List.Completed || resp.Msg.List.FinishedAt != 0 {
		t.Errorf("expected reopened list without finishedAt, got %+v", resp.Msg.List)
	}
	if resp.Msg.List.Name != "Groceries 2" {
		t.Errorf("expected renamed list, got %s", resp.Msg.List.Name)
	}

	_, err = env.lists.UpdateList(ctx, connect.NewRequest(&api.UpdateListRequest{ListID: list.ID}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestDeleteList(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	list := env.createList(t, "Groceries")
	env.createItems(t, list.ID, seedItem{"Milk", "dairy"})

	if _, err := env.lists.DeleteList(ctx, connect.NewRequest(&api.DeleteListRequest{ListID: list.ID})); err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}

	_, err := env.lists.GetList(ctx, connect.NewRequest(&api.GetListRequest{ListID: list.ID}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = env.lists.DeleteList(ctx, connect.NewRequest(&api.DeleteListRequest{ListID: list.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListService_OtherUsersList(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	bob := models.NewUser("bob", "hash")
	if err := env.store.CreateUser(ctx, bob); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	bobsList := &models.List{UserID: bob.ID, Name: "Bob's"}
	if err := env.store.CreateList(ctx, bobsList); err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}

	_, err := env.lists.GetList(ctx, connect.NewRequest(&api.GetListRequest{ListID: bobsList.ID}))
	assertCode(t, err, connect.CodePermissionDenied)

	_, err = env.items.ListItems(ctx, connect.NewRequest(&api.ListItemsRequest{ListID: bobsList.ID}))
	assertCode(t, err, connect.CodePermissionDenied)

	lists, err := env.lists.ListLists(ctx, connect.NewRequest(&api.ListListsRequest{}))
	if err != nil {
		t.Fatalf("ListLists failed: %v", err)
	}
	if len(lists.Msg.Lists) != 0 {
		t.Errorf("expected alice to see no lists, got %d", len(lists.Msg.Lists))
	}
}

func TestApplyTemplate_AppendsAfterLastItem(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	list := env.createList(t, "Party")
	env.createItems(t, list.ID, seedItem{"Cake", "groceries"}, seedItem{"Candles", ""})

	resp, err := env.lists.ApplyTemplate(ctx, connect.NewRequest(&api.ApplyTemplateRequest{
		ListID:       list.ID,
		TemplateName: "Party supplies",
	}))
	if err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}
	if len(resp.Msg.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(resp.Msg.Items))
	}
	if resp.Msg.Items[0].Order != 2 {
		t.Errorf("expected first template item at order 2, got %d", resp.Msg.Items[0].Order)
	}

	names := env.itemNames(t, list.ID)
	want := []string{"Cake", "Candles", "Chips", "Soda", "Plastic cups"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestApplyTemplate_UsesPersonalTemplates(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	list := env.createList(t, "Hardware")

	_, err := env.prefs.SavePersonalization(ctx, connect.NewRequest(&api.SavePersonalizationRequest{
		Templates: []*api.Template{{Name: "Fixes", Items: []*api.TemplateItem{{Name: "Screws", Quantity: 50}}}},
	}))
	if err != nil {
		t.Fatalf("SavePersonalization failed: %v", err)
	}

	_, err = env.lists.ApplyTemplate(ctx, connect.NewRequest(&api.ApplyTemplateRequest{ListID: list.ID, TemplateName: "Weekly groceries"}))
	assertCode(t, err, connect.CodeNotFound)

	resp, err := env.lists.ApplyTemplate(ctx, connect.NewRequest(&api.ApplyTemplateRequest{ListID: list.ID, TemplateName: "fixes"}))
	if err != nil {
		t.Fatalf("ApplyTemplate failed: %v", err)
	}
	if len(resp.Msg.Items) != 1 || resp.Msg.Items[0].Quantity != 50 {
		t.Errorf("unexpected items: %+v", resp.Msg.Items)
	}
}
