package service

import (
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/ordering"
	"github.com/mmynk/shoplist/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIList(l *models.List) *api.List {
	return &api.List{
		ID:           l.ID,
		Name:         l.Name,
		Completed:    l.Completed,
		FinishedAt:   l.FinishedAt,
		DefaultColor: l.DefaultColor,
		CreatedAt:    l.CreatedAt,
	}
}

func toAPIItem(item models.Item) *api.Item {
	return &api.Item{
		ID:          item.ID,
		ListID:      item.ListID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		Completed:   item.Completed,
		Missing:     item.Missing,
		Comment:     item.Comment,
		Color:       item.Color,
		Category:    item.Category,
		Order:       item.Order,
		CreatedAt:   item.CreatedAt,
	}
}

func toAPIItems(items []models.Item) []*api.Item {
	out := make([]*api.Item, len(items))
	for i, item := range items {
		out[i] = toAPIItem(item)
	}
	return out
}

// toAPIBlocks partitions items, which must already be in display order.
func toAPIBlocks(items []models.Item) []*api.Block {
	blocks := ordering.Partition(items)
	out := make([]*api.Block, len(blocks))
	for i, b := range blocks {
		ids := make([]string, len(b.Items))
		for j, item := range b.Items {
			ids[j] = item.ID
		}
		out[i] = &api.Block{Category: b.Category, ItemIDs: ids}
		if ordering.BlockIndex(blocks, b.Category) == i {
			out[i].CanMoveUp = ordering.CanMove(items, b.Category, ordering.Up)
			out[i].CanMoveDown = ordering.CanMove(items, b.Category, ordering.Down)
		}
	}
	return out
}

func toAPICategories(cats []models.Category) []*api.Category {
	out := make([]*api.Category, len(cats))
	for i, c := range cats {
		out[i] = &api.Category{Value: c.Value, Label: c.Label, Icon: c.Icon}
	}
	return out
}

func fromAPICategories(cats []*api.Category) []models.Category {
	out := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		if c == nil {
			continue
		}
		out = append(out, models.Category{Value: c.Value, Label: c.Label, Icon: c.Icon})
	}
	return out
}

func toAPITemplates(templates []models.Template) []*api.Template {
	out := make([]*api.Template, len(templates))
	for i, t := range templates {
		items := make([]*api.TemplateItem, len(t.Items))
		for j, ti := range t.Items {
			items[j] = &api.TemplateItem{
				Name:        ti.Name,
				Description: ti.Description,
				Quantity:    ti.Quantity,
				Comment:     ti.Comment,
				Color:       ti.Color,
				Category:    ti.Category,
			}
		}
		out[i] = &api.Template{Name: t.Name, Items: items}
	}
	return out
}

func fromAPITemplates(templates []*api.Template) []models.Template {
	out := make([]models.Template, 0, len(templates))
	for _, t := range templates {
		if t == nil {
			continue
		}
		items := make([]models.TemplateItem, 0, len(t.Items))
		for _, ti := range t.Items {
			if ti == nil {
				continue
			}
			items = append(items, models.TemplateItem{
				Name:        ti.Name,
				Description: ti.Description,
				Quantity:    ti.Quantity,
				Comment:     ti.Comment,
				Color:       ti.Color,
				Category:    ti.Category,
			})
		}
		out = append(out, models.Template{Name: t.Name, Items: items})
	}
	return out
}
