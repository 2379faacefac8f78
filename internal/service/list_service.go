package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/catalog"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/ordering"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/api/apiconnect"
)

// ListService implements the Connect ListService
type ListService struct {
	apiconnect.UnimplementedListServiceHandler
	store   storage.Store
	catalog *catalog.Catalog
}

// NewListService creates a new ListService with the given storage backend.
func NewListService(store storage.Store, cat *catalog.Catalog) *ListService {
	return &ListService{store: store, catalog: cat}
}

// findTemplate resolves name against the user's templates, or the defaults
// when the user has none.
func (s *ListService) findTemplate(ctx context.Context, userID, name string) (models.Template, error) {
	doc, err := s.store.GetPersonalization(ctx, userID)
	if err != nil {
		return models.Template{}, storeError(err)
	}
	var personal []models.Template
	if doc != nil {
		personal = doc.Templates
	}
	t, ok := catalog.FindTemplate(s.catalog.TemplatesFor(personal), name)
	if !ok {
		return models.Template{}, connect.NewError(connect.CodeNotFound, fmt.Errorf("template %q not found", name))
	}
	return t, nil
}

func (s *ListService) createItems(ctx context.Context, items []models.Item) ([]models.Item, error) {
	for i := range items {
		if err := s.store.CreateItem(ctx, &items[i]); err != nil {
			return nil, storeError(err)
		}
	}
	return items, nil
}

// CreateList creates a list, optionally seeded from a template.
func (s *ListService) CreateList(ctx context.Context, req *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("CreateList request received", "user_id", userID, "name", req.Msg.Name, "template", req.Msg.TemplateName)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name is required")
	}

	var tmpl *models.Template
	if req.Msg.TemplateName != "" {
		t, err := s.findTemplate(ctx, userID, req.Msg.TemplateName)
		if err != nil {
			return nil, err
		}
		tmpl = &t
	}

	list := &models.List{
		UserID:       userID,
		Name:         name,
		DefaultColor: req.Msg.DefaultColor,
	}
	if err := s.store.CreateList(ctx, list); err != nil {
		slog.Error("CreateList failed", "error", err)
		return nil, storeError(err)
	}

	var items []models.Item
	if tmpl != nil {
		items, err = s.createItems(ctx, catalog.TemplateItems(*tmpl, list.ID, list.DefaultColor, 0))
		if err != nil {
			slog.Error("CreateList failed to seed template", "list_id", list.ID, "error", err)
			if delErr := s.store.DeleteList(ctx, list.ID); delErr != nil {
				slog.Error("Failed to remove partially seeded list", "list_id", list.ID, "error", delErr)
			}
			return nil, err
		}
	}

	slog.Info("List created", "list_id", list.ID, "items", len(items))
	return connect.NewResponse(&api.CreateListResponse{
		List:  toAPIList(list),
		Items: toAPIItems(items),
	}), nil
}

// GetList returns one of the caller's lists.
func (s *ListService) GetList(ctx context.Context, req *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	list, err := ownedList(ctx, s.store, userID, req.Msg.ListID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetListResponse{List: toAPIList(list)}), nil
}

// ListLists returns the caller's lists in creation order.
func (s *ListService) ListLists(ctx context.Context, req *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ListLists request received", "user_id", userID)

	lists, err := s.store.ListListsByUser(ctx, userID)
	if err != nil {
		slog.Error("ListLists failed", "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.List, len(lists))
	for i, l := range lists {
		out[i] = toAPIList(l)
	}
	slog.Info("ListLists successful", "count", len(out))
	return connect.NewResponse(&api.ListListsResponse{Lists: out}), nil
}

// UpdateList renames, recolors, completes or reopens a list. Completing
// stamps FinishedAt; reopening clears it.
func (s *ListService) UpdateList(ctx context.Context, req *connect.Request[api.UpdateListRequest]) (*connect.Response[api.UpdateListResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("UpdateList request received", "list_id", req.Msg.ListID)

	msg := req.Msg
	if msg.Name == nil && msg.DefaultColor == nil && msg.Completed == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNothingToUpdate)
	}
	list, err := ownedList(ctx, s.store, userID, msg.ListID)
	if err != nil {
		return nil, err
	}

	if msg.Name != nil {
		name := strings.TrimSpace(*msg.Name)
		if name == "" {
			return nil, invalidArgument("name must not be empty")
		}
		list.Name = name
	}
	if msg.DefaultColor != nil {
		list.DefaultColor = *msg.DefaultColor
	}
	if msg.Completed != nil {
		switch {
		case *msg.Completed && !list.Completed:
			list.FinishedAt = time.Now().Unix()
		case !*msg.Completed:
			list.FinishedAt = 0
		}
		list.Completed = *msg.Completed
	}

	if err := s.store.UpdateList(ctx, list); err != nil {
		slog.Error("UpdateList failed", "list_id", list.ID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("List updated", "list_id", list.ID, "completed", list.Completed)
	return connect.NewResponse(&api.UpdateListResponse{List: toAPIList(list)}), nil
}

// DeleteList removes a list and its items.
func (s *ListService) DeleteList(ctx context.Context, req *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("DeleteList request received", "list_id", req.Msg.ListID)

	if _, err := ownedList(ctx, s.store, userID, req.Msg.ListID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteList(ctx, req.Msg.ListID); err != nil {
		slog.Error("DeleteList failed", "error", err)
		return nil, storeError(err)
	}

	slog.Info("List deleted", "list_id", req.Msg.ListID)
	return connect.NewResponse(&api.DeleteListResponse{}), nil
}

// ApplyTemplate appends a template's items after the list's last item.
func (s *ListService) ApplyTemplate(ctx context.Context, req *connect.Request[api.ApplyTemplateRequest]) (*connect.Response[api.ApplyTemplateResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ApplyTemplate request received", "list_id", req.Msg.ListID, "template", req.Msg.TemplateName)

	if req.Msg.TemplateName == "" {
		return nil, invalidArgument("template_name required")
	}
	list, err := ownedList(ctx, s.store, userID, req.Msg.ListID)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.findTemplate(ctx, userID, req.Msg.TemplateName)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ListItems(ctx, list.ID, storage.ItemFilter{})
	if err != nil {
		return nil, storeError(err)
	}

	items, err := s.createItems(ctx, catalog.TemplateItems(tmpl, list.ID, list.DefaultColor, ordering.NextOrder(existing)))
	if err != nil {
		slog.Error("ApplyTemplate failed", "list_id", list.ID, "error", err)
		return nil, err
	}

	slog.Info("Template applied", "list_id", list.ID, "count", len(items))
	return connect.NewResponse(&api.ApplyTemplateResponse{Items: toAPIItems(items)}), nil
}
