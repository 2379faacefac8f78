package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmynk/shoplist/internal/models"
)

// GetPersonalization loads the user's personalization document.
func (s *SQLiteStore) GetPersonalization(ctx context.Context, userID string) (*models.Personalization, error) {
	return getPersonalization(ctx, s.db, userID)
}

// SavePersonalization merges the non-nil sections of p into the stored
// document and returns the result.
func (s *SQLiteStore) SavePersonalization(ctx context.Context, p *models.Personalization) (*models.Personalization, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	doc, err := getPersonalization(ctx, tx, p.UserID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = &models.Personalization{UserID: p.UserID}
	}
	if p.Categories != nil {
		doc.Categories = p.Categories
	}
	if p.Templates != nil {
		doc.Templates = p.Templates
	}
	if p.NameCategoryMap != nil {
		doc.NameCategoryMap = p.NameCategoryMap
	}
	doc.UpdatedAt = time.Now().Unix()

	if err := putPersonalization(ctx, tx, doc); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return doc, nil
}

// LoadNameCategoryMap returns the user's name->category map, empty when unset.
func (s *SQLiteStore) LoadNameCategoryMap(ctx context.Context, userID string) (models.NameCategoryMap, error) {
	doc, err := getPersonalization(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.NameCategoryMap == nil {
		return models.NameCategoryMap{}, nil
	}
	return doc.NameCategoryMap, nil
}

// SaveNameCategoryMap replaces the stored map.
func (s *SQLiteStore) SaveNameCategoryMap(ctx context.Context, userID string, names models.NameCategoryMap) (models.NameCategoryMap, error) {
	if names == nil {
		names = models.NameCategoryMap{}
	}
	doc, err := s.SavePersonalization(ctx, &models.Personalization{UserID: userID, NameCategoryMap: names})
	if err != nil {
		return nil, err
	}
	return doc.NameCategoryMap, nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getPersonalization(ctx context.Context, q querier, userID string) (*models.Personalization, error) {
	var categories, templates, names sql.NullString
	doc := &models.Personalization{UserID: userID}

	err := q.QueryRowContext(ctx,
		`SELECT categories, templates, name_category_map, updated_at FROM personalization WHERE user_id = ?`,
		userID,
	).Scan(&categories, &templates, &names, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personalization: %w", err)
	}

	if err := decodeColumn(categories, &doc.Categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	if err := decodeColumn(templates, &doc.Templates); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	if err := decodeColumn(names, &doc.NameCategoryMap); err != nil {
		return nil, fmt.Errorf("failed to decode name category map: %w", err)
	}
	return doc, nil
}

func putPersonalization(ctx context.Context, tx *sql.Tx, doc *models.Personalization) error {
	categories, err := encodeColumn(doc.Categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	templates, err := encodeColumn(doc.Templates)
	if err != nil {
		return fmt.Errorf("failed to encode templates: %w", err)
	}
	names, err := encodeColumn(doc.NameCategoryMap)
	if err != nil {
		return fmt.Errorf("failed to encode name category map: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO personalization (user_id, categories, templates, name_category_map, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			categories = excluded.categories,
			templates = excluded.templates,
			name_category_map = excluded.name_category_map,
			updated_at = excluded.updated_at`,
		doc.UserID, categories, templates, names, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save personalization: %w", err)
	}
	return nil
}

// encodeColumn stores nil sections as NULL so "never saved" stays
// distinguishable from "saved empty".
func encodeColumn[T any](v T) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, nil
	}
	return string(data), nil
}

func decodeColumn(col sql.NullString, dest any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dest)
}
