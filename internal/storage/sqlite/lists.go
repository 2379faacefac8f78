package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
)

const listColumns = `id, user_id, name, completed, finished_at, default_color, created_at`

// CreateList persists a new list.
func (s *SQLiteStore) CreateList(ctx context.Context, list *models.List) error {
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt == 0 {
		list.CreatedAt = time.Now().Unix()
	}
	if list.DefaultColor == "" {
		list.DefaultColor = models.DefaultColor
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lists (`+listColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		list.ID, list.UserID, list.Name, boolToInt(list.Completed), list.FinishedAt, list.DefaultColor, list.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}
	return nil
}

// GetList retrieves a list by ID.
func (s *SQLiteStore) GetList(ctx context.Context, id string) (*models.List, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM lists WHERE id = ?`, id)
	list, err := scanList(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("list %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

// ListListsByUser returns the user's lists, oldest first.
func (s *SQLiteStore) ListListsByUser(ctx context.Context, userID string) ([]*models.List, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+listColumns+` FROM lists WHERE user_id = ? ORDER BY created_at, rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lists: %w", err)
	}
	return lists, nil
}

// UpdateList stores name, color and completion state.
func (s *SQLiteStore) UpdateList(ctx context.Context, list *models.List) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE lists SET name = ?, completed = ?, finished_at = ?, default_color = ? WHERE id = ?`,
		list.Name, boolToInt(list.Completed), list.FinishedAt, list.DefaultColor, list.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}
	return expectAffected(result, "list", list.ID)
}

// DeleteList removes a list and, through the foreign key, its items.
func (s *SQLiteStore) DeleteList(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return expectAffected(result, "list", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*models.List, error) {
	list := &models.List{}
	err := row.Scan(&list.ID, &list.UserID, &list.Name, &list.Completed,
		&list.FinishedAt, &list.DefaultColor, &list.CreatedAt)
	if err != nil {
		return nil, err
	}
	return list, nil
}
