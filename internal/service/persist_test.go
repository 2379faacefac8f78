package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
)

// memItems is an ItemStore without batch support, so saveOrders takes the
// fan-out path.
type memItems struct {
	mu       sync.Mutex
	orders   map[string]int
	fail     map[string]bool
	inFlight atomic.Int32
	peak     atomic.Int32
}

func newMemItems(ids ...string) *memItems {
	m := &memItems{orders: make(map[string]int), fail: make(map[string]bool)}
	for i, id := range ids {
		m.orders[id] = i
	}
	return m
}

func (m *memItems) CreateItem(context.Context, *models.Item) error { return nil }

func (m *memItems) UpdateItem(_ context.Context, listID, id string, patch models.ItemPatch) (*models.Item, error) {
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		peak := m.peak.Load()
		if n <= peak || m.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok || m.fail[id] {
		return nil, storage.ErrNotFound
	}
	if patch.Order != nil {
		m.orders[id] = *patch.Order
	}
	return &models.Item{ID: id, ListID: listID, Order: m.orders[id]}, nil
}

func (m *memItems) DeleteItem(context.Context, string, string) error { return nil }

func (m *memItems) ListItems(context.Context, string, storage.ItemFilter) ([]models.Item, error) {
	return nil, nil
}

func TestSaveOrders_FanOut(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	store := newMemItems(ids...)

	orders := make([]models.ItemOrder, len(ids))
	for i, id := range ids {
		orders[i] = models.ItemOrder{ID: id, Order: len(ids) - 1 - i}
	}

	require.NoError(t, saveOrders(context.Background(), store, "list", orders))

	for i, id := range ids {
		assert.Equal(t, len(ids)-1-i, store.orders[id], "order of %s", id)
	}
	assert.LessOrEqual(t, int(store.peak.Load()), maxParallelWrites)
}

func TestSaveOrders_AggregatesFailures(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := newMemItems("a", "b", "c")
	store.fail["b"] = true

	err := saveOrders(context.Background(), store, "list", []models.ItemOrder{
		{ID: "a", Order: 2},
		{ID: "b", Order: 1},
		{ID: "c", Order: 0},
		{ID: "zzz", Order: 3},
	})

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.Equal(t, 2, store.orders["a"], "independent writes still apply")
	assert.Equal(t, 0, store.orders["c"])
}

func TestSaveOrders_Empty(t *testing.T) {
	store := newMemItems("a")
	assert.NoError(t, saveOrders(context.Background(), store, "list", nil))
	assert.Equal(t, int32(0), store.peak.Load())
}
