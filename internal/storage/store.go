// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/shoplist/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to another owner.
var ErrNotFound = errors.New("not found")

// ItemFilter narrows ListItems. Empty fields match everything.
type ItemFilter struct {
	Category string
}

// ItemStore persists list items.
type ItemStore interface {
	// CreateItem persists a new item. item.ID and item.CreatedAt are populated by the store.
	CreateItem(ctx context.Context, item *models.Item) error

	// UpdateItem applies patch to the item with id inside listID and returns the stored result.
	// Returns ErrNotFound when the item is absent or lives in another list.
	UpdateItem(ctx context.Context, listID, id string, patch models.ItemPatch) (*models.Item, error)

	// DeleteItem removes an item. Returns ErrNotFound when absent or in another list.
	DeleteItem(ctx context.Context, listID, id string) error

	// ListItems returns the items of a list sorted by order ascending.
	ListItems(ctx context.Context, listID string, filter ItemFilter) ([]models.Item, error)
}

// OrderBatcher is implemented by item stores that can apply many order
// values atomically. Callers fall back to one UpdateItem per item otherwise.
type OrderBatcher interface {
	SetItemOrders(ctx context.Context, listID string, orders []models.ItemOrder) error
}

// ListStore persists shopping lists.
type ListStore interface {
	CreateList(ctx context.Context, list *models.List) error
	GetList(ctx context.Context, id string) (*models.List, error)
	ListListsByUser(ctx context.Context, userID string) ([]*models.List, error)
	UpdateList(ctx context.Context, list *models.List) error
	// DeleteList removes the list and its items.
	DeleteList(ctx context.Context, id string) error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByUsername returns nil, nil when no user has that username.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	// DeleteUser removes the user together with lists, items and personalization.
	DeleteUser(ctx context.Context, id string) error
}

// PersonalizationStore persists the per-user personalization document.
type PersonalizationStore interface {
	// GetPersonalization returns nil, nil when the user has saved nothing yet.
	GetPersonalization(ctx context.Context, userID string) (*models.Personalization, error)
	// SavePersonalization upserts the document; nil fields keep their stored value.
	SavePersonalization(ctx context.Context, p *models.Personalization) (*models.Personalization, error)

	LoadNameCategoryMap(ctx context.Context, userID string) (models.NameCategoryMap, error)
	// SaveNameCategoryMap replaces the whole map (last write wins) and returns it.
	SaveNameCategoryMap(ctx context.Context, userID string, names models.NameCategoryMap) (models.NameCategoryMap, error)
}

// Store groups every storage concern used by the services.
// This abstraction allows swapping storage backends without changing the service layer.
type Store interface {
	ItemStore
	ListStore
	UserStore
	PersonalizationStore

	// Close releases any resources held by the store.
	Close() error
}
