package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
)

const itemColumns = `id, list_id, name, description, quantity, completed, missing, comment, color, category, sort_order, created_at`

// CreateItem persists a new item.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ListID, item.Name, item.Description, item.Quantity,
		boolToInt(item.Completed), boolToInt(item.Missing),
		item.Comment, item.Color, item.Category, item.Order, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// UpdateItem applies a partial update scoped to listID.
func (s *SQLiteStore) UpdateItem(ctx context.Context, listID, id string, patch models.ItemPatch) (*models.Item, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("empty item update")
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Quantity != nil {
		set("quantity", *patch.Quantity)
	}
	if patch.Completed != nil {
		set("completed", boolToInt(*patch.Completed))
	}
	if patch.Missing != nil {
		set("missing", boolToInt(*patch.Missing))
	}
	if patch.Comment != nil {
		set("comment", *patch.Comment)
	}
	if patch.Color != nil {
		set("color", *patch.Color)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Order != nil {
		set("sort_order", *patch.Order)
	}
	args = append(args, id, listID)

	result, err := s.db.ExecContext(ctx,
		`UPDATE items SET `+strings.Join(sets, ", ")+` WHERE id = ? AND list_id = ?`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if err := expectAffected(result, "item", id); err != nil {
		return nil, err
	}

	return s.getItem(ctx, listID, id)
}

// DeleteItem removes an item scoped to listID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, listID, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ? AND list_id = ?", id, listID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return expectAffected(result, "item", id)
}

// ListItems returns the list's items sorted by order. Ties keep insertion order.
func (s *SQLiteStore) ListItems(ctx context.Context, listID string, filter storage.ItemFilter) ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE list_id = ?`
	args := []any{listID}
	if c := strings.TrimSpace(filter.Category); c != "" {
		query += ` AND category = ?`
		args = append(args, c)
	}
	query += ` ORDER BY sort_order, rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// SetItemOrders writes every order value in one transaction. Either all rows
// change or none do.
func (s *SQLiteStore) SetItemOrders(ctx context.Context, listID string, orders []models.ItemOrder) error {
	if len(orders) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "UPDATE items SET sort_order = ? WHERE id = ? AND list_id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare order update: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		result, err := stmt.ExecContext(ctx, o.Order, o.ID, listID)
		if err != nil {
			return fmt.Errorf("failed to update order of item %s: %w", o.ID, err)
		}
		if err := expectAffected(result, "item", o.ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) getItem(ctx context.Context, listID, id string) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND list_id = ?`, id, listID)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(&item.ID, &item.ListID, &item.Name, &item.Description, &item.Quantity,
		&item.Completed, &item.Missing, &item.Comment, &item.Color, &item.Category,
		&item.Order, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}
