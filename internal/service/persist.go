package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
)

// maxParallelWrites bounds the goroutines a single fan-out may start.
const maxParallelWrites = 4

// fanOut calls fn once per id with bounded concurrency. Calls are
// independent: one failure does not cancel the others, and every failure is
// returned combined.
func fanOut(ctx context.Context, ids []string, fn func(ctx context.Context, id string) error) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs error
	)
	g.SetLimit(maxParallelWrites)

	for _, id := range ids {
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("item %s: %w", id, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

// saveOrders persists order assignments. Stores implementing
// storage.OrderBatcher apply them in one transaction; other stores get one
// UpdateItem per assignment.
func saveOrders(ctx context.Context, store storage.ItemStore, listID string, orders []models.ItemOrder) error {
	if len(orders) == 0 {
		return nil
	}
	if batcher, ok := store.(storage.OrderBatcher); ok {
		return batcher.SetItemOrders(ctx, listID, orders)
	}

	byID := make(map[string]int, len(orders))
	ids := make([]string, len(orders))
	for i, o := range orders {
		byID[o.ID] = o.Order
		ids[i] = o.ID
	}
	return fanOut(ctx, ids, func(ctx context.Context, id string) error {
		order := byID[id]
		_, err := store.UpdateItem(ctx, listID, id, models.ItemPatch{Order: &order})
		return err
	})
}
