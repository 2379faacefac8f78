package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/catalog"
	"github.com/mmynk/shoplist/internal/inference"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/api/apiconnect"
)

// PersonalizationService implements the Connect PersonalizationService
type PersonalizationService struct {
	apiconnect.UnimplementedPersonalizationServiceHandler
	store   storage.PersonalizationStore
	catalog *catalog.Catalog
}

// NewPersonalizationService creates a new PersonalizationService.
func NewPersonalizationService(store storage.PersonalizationStore, cat *catalog.Catalog) *PersonalizationService {
	return &PersonalizationService{store: store, catalog: cat}
}

// view merges a stored document (possibly nil) with the catalog defaults.
func (s *PersonalizationService) view(doc *models.Personalization) *api.GetPersonalizationResponse {
	if doc == nil {
		doc = &models.Personalization{}
	}
	names := make(map[string]string, len(doc.NameCategoryMap))
	for k, v := range doc.NameCategoryMap {
		names[k] = v
	}
	return &api.GetPersonalizationResponse{
		Categories:      toAPICategories(s.catalog.MergeCategories(doc.Categories)),
		Templates:       toAPITemplates(s.catalog.TemplatesFor(doc.Templates)),
		NameCategoryMap: names,
		Icons:           s.catalog.Icons,
	}
}

// GetPersonalization returns the caller's categories (defaults merged with
// personal entries), templates and name map.
func (s *PersonalizationService) GetPersonalization(ctx context.Context, req *connect.Request[api.GetPersonalizationRequest]) (*connect.Response[api.GetPersonalizationResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.GetPersonalization(ctx, userID)
	if err != nil {
		slog.Error("GetPersonalization failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}
	return connect.NewResponse(s.view(doc)), nil
}

func cleanTemplates(in []models.Template) []models.Template {
	out := make([]models.Template, 0, len(in))
	for _, t := range in {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			continue
		}
		items := make([]models.TemplateItem, 0, len(t.Items))
		for _, ti := range t.Items {
			if ti.Name = strings.TrimSpace(ti.Name); ti.Name != "" {
				items = append(items, ti)
			}
		}
		t.Items = items
		out = append(out, t)
	}
	return out
}

func cleanNameMap(in map[string]string) models.NameCategoryMap {
	out := make(models.NameCategoryMap, len(in))
	for name, category := range in {
		if key := inference.Normalize(name); key != "" {
			out[key] = strings.TrimSpace(category)
		}
	}
	return out
}

// SavePersonalization replaces the sections present in the request.
func (s *PersonalizationService) SavePersonalization(ctx context.Context, req *connect.Request[api.SavePersonalizationRequest]) (*connect.Response[api.SavePersonalizationResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	slog.Info("SavePersonalization request received",
		"user_id", userID,
		"categories", msg.Categories != nil,
		"templates", msg.Templates != nil,
		"name_map", msg.NameCategoryMap != nil,
	)

	if msg.Categories == nil && msg.Templates == nil && msg.NameCategoryMap == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNothingToUpdate)
	}

	doc := &models.Personalization{UserID: userID}
	if msg.Categories != nil {
		doc.Categories = s.catalog.SanitizeCategories(fromAPICategories(msg.Categories))
	}
	if msg.Templates != nil {
		doc.Templates = cleanTemplates(fromAPITemplates(msg.Templates))
	}
	if msg.NameCategoryMap != nil {
		doc.NameCategoryMap = cleanNameMap(msg.NameCategoryMap)
	}

	saved, err := s.store.SavePersonalization(ctx, doc)
	if err != nil {
		slog.Error("SavePersonalization failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	view := s.view(saved)
	return connect.NewResponse(&api.SavePersonalizationResponse{
		Categories:      view.Categories,
		Templates:       view.Templates,
		NameCategoryMap: view.NameCategoryMap,
		Icons:           view.Icons,
	}), nil
}
