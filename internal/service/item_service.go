package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"connectrpc.com/connect"
	"go.uber.org/multierr"

	"github.com/mmynk/shoplist/internal/catalog"
	"github.com/mmynk/shoplist/internal/inference"
	"github.com/mmynk/shoplist/internal/middleware"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/ordering"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/api/apiconnect"
)

// ItemService implements the Connect ItemService
type ItemService struct {
	apiconnect.UnimplementedItemServiceHandler
	store   storage.Store
	catalog *catalog.Catalog
	metrics *middleware.Metrics
}

// NewItemService creates a new ItemService. metrics may be nil.
func NewItemService(store storage.Store, cat *catalog.Catalog, metrics *middleware.Metrics) *ItemService {
	return &ItemService{store: store, catalog: cat, metrics: metrics}
}

// registry returns the user's category registry: defaults merged with
// personal entries. The personal entries are returned as well.
func (s *ItemService) registry(ctx context.Context, userID string) (merged, personal []models.Category, err error) {
	doc, err := s.store.GetPersonalization(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if doc != nil {
		personal = doc.Categories
	}
	return s.catalog.MergeCategories(personal), personal, nil
}

// learn records name -> category in the user's name map and registers a
// category the user has not seen before. Failures are logged only; the item
// itself is already saved.
func (s *ItemService) learn(ctx context.Context, userID, name, category, iconKey string) {
	names, err := s.store.LoadNameCategoryMap(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load name map", "user_id", userID, "error", err)
		return
	}
	if next, changed := inference.Record(names, name, category); changed {
		if _, err := s.store.SaveNameCategoryMap(ctx, userID, next); err != nil {
			slog.Warn("Failed to save name map", "user_id", userID, "error", err)
		}
	}

	merged, personal, err := s.registry(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load categories", "user_id", userID, "error", err)
		return
	}
	grown, added := s.catalog.EnsureCategory(merged, category, iconKey)
	if !added {
		return
	}
	personal = append(slices.Clone(personal), grown[len(grown)-1])
	if _, err := s.store.SavePersonalization(ctx, &models.Personalization{UserID: userID, Categories: personal}); err != nil {
		slog.Warn("Failed to register category", "user_id", userID, "category", category, "error", err)
		return
	}
	slog.Info("Category registered", "user_id", userID, "category", category)
}

// ListItems returns a list's items in display order with their category blocks.
func (s *ItemService) ListItems(ctx context.Context, req *connect.Request[api.ListItemsRequest]) (*connect.Response[api.ListItemsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ownedList(ctx, s.store, userID, req.Msg.ListID); err != nil {
		return nil, err
	}

	items, err := s.store.ListItems(ctx, req.Msg.ListID, storage.ItemFilter{Category: strings.TrimSpace(req.Msg.Category)})
	if err != nil {
		slog.Error("ListItems failed", "list_id", req.Msg.ListID, "error", err)
		return nil, storeError(err)
	}

	slog.Debug("ListItems successful", "list_id", req.Msg.ListID, "count", len(items))
	return connect.NewResponse(&api.ListItemsResponse{
		Items:  toAPIItems(items),
		Blocks: toAPIBlocks(items),
	}), nil
}

// CreateItem adds an item. Quantity defaults to 1 and color to the list's
// default color. Without an order the item is appended; with one it is
// inserted at that position.
func (s *ItemService) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	slog.Info("CreateItem request received", "list_id", msg.ListID, "name", msg.Name, "category", msg.Category)

	name := strings.TrimSpace(msg.Name)
	if name == "" {
		return nil, invalidArgument("name is required")
	}
	list, err := ownedList(ctx, s.store, userID, msg.ListID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		ListID:      list.ID,
		Name:        name,
		Description: msg.Description,
		Quantity:    1,
		Missing:     msg.Missing,
		Comment:     msg.Comment,
		Color:       msg.Color,
		Category:    strings.TrimSpace(msg.Category),
	}
	if msg.Quantity != nil {
		if *msg.Quantity < 1 {
			return nil, invalidArgument("quantity must be at least 1")
		}
		item.Quantity = *msg.Quantity
	}
	if item.Color == "" {
		item.Color = list.DefaultColor
	}
	if item.Color == "" {
		item.Color = models.DefaultColor
	}
	if msg.Order != nil && *msg.Order < 0 {
		return nil, invalidArgument("order must not be negative")
	}
	existing, err := s.store.ListItems(ctx, list.ID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}
	item.Order = ordering.NextOrder(existing)

	if err := s.store.CreateItem(ctx, item); err != nil {
		slog.Error("CreateItem failed", "list_id", list.ID, "error", err)
		return nil, storeError(err)
	}
	if msg.Order != nil {
		placed, err := s.placeItem(ctx, list.ID, item.ID, *msg.Order)
		if err != nil {
			return nil, err
		}
		item = placed
	}
	s.learn(ctx, userID, item.Name, item.Category, msg.CategoryIcon)

	slog.Info("Item created", "item_id", item.ID, "order", item.Order)
	return connect.NewResponse(&api.CreateItemResponse{Item: toAPIItem(*item)}), nil
}

func patchFromRequest(msg *api.UpdateItemRequest) (models.ItemPatch, error) {
	patch := models.ItemPatch{
		Name:        msg.Name,
		Description: msg.Description,
		Quantity:    msg.Quantity,
		Completed:   msg.Completed,
		Missing:     msg.Missing,
		Comment:     msg.Comment,
		Color:       msg.Color,
		Category:    msg.Category,
		Order:       msg.Order,
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return patch, invalidArgument("name must not be empty")
		}
		patch.Name = &name
	}
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		patch.Category = &category
	}
	if patch.Quantity != nil && *patch.Quantity < 1 {
		return patch, invalidArgument("quantity must be at least 1")
	}
	if patch.Order != nil && *patch.Order < 0 {
		return patch, invalidArgument("order must not be negative")
	}
	return patch, nil
}

// placeItem moves itemID to position pos (clamped to the end) and renumbers
// the list so every order stays unique.
func (s *ItemService) placeItem(ctx context.Context, listID, itemID string, pos int) (*models.Item, error) {
	items, err := s.store.ListItems(ctx, listID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}
	from := slices.IndexFunc(items, func(it models.Item) bool { return it.ID == itemID })
	if from < 0 {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("item %s: %w", itemID, storage.ErrNotFound))
	}

	to := min(pos, len(items)-1)
	reordered, err := ordering.ReorderItem(items, from, to)
	if err != nil {
		return nil, orderingError(err)
	}
	if err := saveOrders(ctx, s.store, listID, ordering.Diff(items, reordered)); err != nil {
		slog.Error("Failed to persist item position", "list_id", listID, "item_id", itemID, "error", err)
		return nil, storeError(err)
	}
	placed := reordered[to]
	return &placed, nil
}

// UpdateItem applies a partial update to an item.
func (s *ItemService) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	slog.Info("UpdateItem request received", "list_id", msg.ListID, "item_id", msg.ItemID)

	patch, err := patchFromRequest(msg)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNothingToUpdate)
	}
	if _, err := ownedList(ctx, s.store, userID, msg.ListID); err != nil {
		return nil, err
	}

	position := patch.Order
	patch.Order = nil

	var item *models.Item
	if !patch.Empty() {
		item, err = s.store.UpdateItem(ctx, msg.ListID, msg.ItemID, patch)
		if err != nil {
			slog.Error("UpdateItem failed", "item_id", msg.ItemID, "error", err)
			return nil, storeError(err)
		}
	}
	if position != nil {
		item, err = s.placeItem(ctx, msg.ListID, msg.ItemID, *position)
		if err != nil {
			return nil, err
		}
	}
	if patch.Name != nil || patch.Category != nil {
		s.learn(ctx, userID, item.Name, item.Category, msg.CategoryIcon)
	}

	slog.Info("Item updated", "item_id", item.ID)
	return connect.NewResponse(&api.UpdateItemResponse{Item: toAPIItem(*item)}), nil
}

// DeleteItem removes an item from a list.
func (s *ItemService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteItem request received", "list_id", req.Msg.ListID, "item_id", req.Msg.ItemID)

	if _, err := ownedList(ctx, s.store, userID, req.Msg.ListID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteItem(ctx, req.Msg.ListID, req.Msg.ItemID); err != nil {
		slog.Error("DeleteItem failed", "item_id", req.Msg.ItemID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Item deleted", "item_id", req.Msg.ItemID)
	return connect.NewResponse(&api.DeleteItemResponse{}), nil
}

// BulkComplete marks every listed item completed.
func (s *ItemService) BulkComplete(ctx context.Context, req *connect.Request[api.BulkCompleteRequest]) (*connect.Response[api.BulkCompleteResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	listID := req.Msg.ListID
	slog.Info("BulkComplete request received", "list_id", listID, "count", len(req.Msg.ItemIDs))

	if len(req.Msg.ItemIDs) == 0 {
		return nil, invalidArgument("item_ids required")
	}
	if _, err := ownedList(ctx, s.store, userID, listID); err != nil {
		return nil, err
	}

	completed := true
	err = fanOut(ctx, req.Msg.ItemIDs, func(ctx context.Context, id string) error {
		_, err := s.store.UpdateItem(ctx, listID, id, models.ItemPatch{Completed: &completed})
		return err
	})
	if err != nil {
		slog.Error("BulkComplete failed", "list_id", listID, "failures", len(multierr.Errors(err)), "error", err)
		return nil, storeError(err)
	}

	items, err := s.store.ListItems(ctx, listID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}
	items = slices.DeleteFunc(items, func(item models.Item) bool {
		return !slices.Contains(req.Msg.ItemIDs, item.ID)
	})

	slog.Info("BulkComplete successful", "list_id", listID, "count", len(items))
	return connect.NewResponse(&api.BulkCompleteResponse{Items: toAPIItems(items)}), nil
}

// BulkDelete removes every listed item.
func (s *ItemService) BulkDelete(ctx context.Context, req *connect.Request[api.BulkDeleteRequest]) (*connect.Response[api.BulkDeleteResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	listID := req.Msg.ListID
	slog.Info("BulkDelete request received", "list_id", listID, "count", len(req.Msg.ItemIDs))

	if len(req.Msg.ItemIDs) == 0 {
		return nil, invalidArgument("item_ids required")
	}
	if _, err := ownedList(ctx, s.store, userID, listID); err != nil {
		return nil, err
	}

	err = fanOut(ctx, req.Msg.ItemIDs, func(ctx context.Context, id string) error {
		return s.store.DeleteItem(ctx, listID, id)
	})
	if err != nil {
		slog.Error("BulkDelete failed", "list_id", listID, "failures", len(multierr.Errors(err)), "error", err)
		return nil, storeError(err)
	}

	slog.Info("BulkDelete successful", "list_id", listID, "count", len(req.Msg.ItemIDs))
	return connect.NewResponse(&api.BulkDeleteResponse{Deleted: len(req.Msg.ItemIDs)}), nil
}

// MoveItem moves one item within the flat display order and renumbers the list.
func (s *ItemService) MoveItem(ctx context.Context, req *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	listID := req.Msg.ListID
	slog.Info("MoveItem request received", "list_id", listID, "from", req.Msg.From, "to", req.Msg.To)

	if _, err := ownedList(ctx, s.store, userID, listID); err != nil {
		return nil, err
	}
	items, err := s.store.ListItems(ctx, listID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}

	moved, err := ordering.ReorderItem(items, req.Msg.From, req.Msg.To)
	if err == nil {
		err = saveOrders(ctx, s.store, listID, ordering.Diff(items, moved))
	}
	s.metrics.ObserveReorder("item", err)
	if err != nil {
		slog.Warn("MoveItem failed", "list_id", listID, "error", err)
		return nil, orderingError(err)
	}

	return connect.NewResponse(&api.MoveItemResponse{Items: toAPIItems(moved)}), nil
}

// MoveCategory swaps a category block with its neighbor and persists the
// resulting order.
func (s *ItemService) MoveCategory(ctx context.Context, req *connect.Request[api.MoveCategoryRequest]) (*connect.Response[api.MoveCategoryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	listID := req.Msg.ListID
	slog.Info("MoveCategory request received", "list_id", listID, "category", req.Msg.Category, "direction", req.Msg.Direction)

	dir, err := ordering.ParseDirection(req.Msg.Direction)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if _, err := ownedList(ctx, s.store, userID, listID); err != nil {
		return nil, err
	}
	items, err := s.store.ListItems(ctx, listID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}

	moved, err := ordering.MoveCategoryBlock(items, req.Msg.Category, dir)
	if err == nil {
		err = saveOrders(ctx, s.store, listID, ordering.Diff(items, moved))
	}
	s.metrics.ObserveReorder("category", err)
	if err != nil {
		slog.Warn("MoveCategory failed", "list_id", listID, "category", req.Msg.Category, "error", err)
		return nil, orderingError(err)
	}

	slog.Info("Category moved", "list_id", listID, "category", req.Msg.Category, "direction", dir)
	return connect.NewResponse(&api.MoveCategoryResponse{
		Items:  toAPIItems(moved),
		Blocks: toAPIBlocks(moved),
	}), nil
}

// SuggestCategory infers a category for a name from the user's name map and
// the list's items, and orders the category options for that name.
func (s *ItemService) SuggestCategory(ctx context.Context, req *connect.Request[api.SuggestCategoryRequest]) (*connect.Response[api.SuggestCategoryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ownedList(ctx, s.store, userID, req.Msg.ListID); err != nil {
		return nil, err
	}

	names, err := s.store.LoadNameCategoryMap(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}
	items, err := s.store.ListItems(ctx, req.Msg.ListID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}
	merged, _, err := s.registry(ctx, userID)
	if err != nil {
		return nil, storeError(err)
	}

	resp := &api.SuggestCategoryResponse{
		Options: toAPICategories(inference.Options(req.Msg.Name, names, items, merged)),
	}
	if suggestion, ok := inference.Suggest(req.Msg.Name, names, items, req.Msg.ExcludeItemID); ok {
		resp.Found = true
		resp.Category = suggestion.Category
		resp.Source = suggestion.Source.String()
	}

	slog.Debug("SuggestCategory", "name", req.Msg.Name, "found", resp.Found, "category", resp.Category)
	return connect.NewResponse(resp), nil
}
