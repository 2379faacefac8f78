// Package ordering computes item positions within a list.
//
// Items render grouped by category: a Block is a maximal contiguous run of
// order-sorted items sharing one category value. Blocks are derived on every
// call and never stored, so editing an item's category reshapes the blocks on
// the next read without extra bookkeeping.
//
// All functions are pure. They copy their input and leave persistence of the
// returned Order values to the caller.
package ordering

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mmynk/shoplist/internal/models"
)

var (
	// ErrNotFound is returned when no block carries the requested category.
	ErrNotFound = errors.New("category block not found")
	// ErrOutOfBounds is returned when a block move would leave the block sequence.
	ErrOutOfBounds = errors.New("category block move out of bounds")
	// ErrInvalidIndex is returned when a drag-and-drop index is outside the sequence.
	ErrInvalidIndex = errors.New("invalid item index")
)

// Direction is the direction of a category block move.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ParseDirection parses "up" or "down" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return Up, fmt.Errorf("unknown direction %q", s)
	}
}

// Block is a contiguous run of items sharing one category value.
type Block struct {
	Category string
	Items    []models.Item
}

// SortByOrder returns a copy of items sorted by Order ascending.
// Items with equal Order keep their input order.
func SortByOrder(items []models.Item) []models.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b models.Item) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return sorted
}

// Partition splits an order-sorted sequence into blocks. Same-category items
// separated by another category end up in separate blocks.
func Partition(sorted []models.Item) []Block {
	var blocks []Block
	for _, item := range sorted {
		if n := len(blocks); n > 0 && blocks[n-1].Category == item.Category {
			blocks[n-1].Items = append(blocks[n-1].Items, item)
			continue
		}
		blocks = append(blocks, Block{Category: item.Category, Items: []models.Item{item}})
	}
	return blocks
}

// Flatten concatenates blocks back into one sequence without touching Order.
func Flatten(blocks []Block) []models.Item {
	var n int
	for _, b := range blocks {
		n += len(b.Items)
	}
	out := make([]models.Item, 0, n)
	for _, b := range blocks {
		out = append(out, b.Items...)
	}
	return out
}

// Renumber returns a copy of items with Order set to each item's index.
func Renumber(items []models.Item) []models.Item {
	out := slices.Clone(items)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// ReorderItem removes the item at from and reinserts it at to in a flat
// sequence, then renumbers. It is not category aware. On error the input is
// returned unchanged.
func ReorderItem(items []models.Item, from, to int) ([]models.Item, error) {
	if from < 0 || from >= len(items) {
		return items, fmt.Errorf("%w: from=%d len=%d", ErrInvalidIndex, from, len(items))
	}
	if to < 0 || to >= len(items) {
		return items, fmt.Errorf("%w: to=%d len=%d", ErrInvalidIndex, to, len(items))
	}

	out := slices.Clone(items)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	return Renumber(out), nil
}

// BlockIndex returns the index of the first block with the given category, or -1.
func BlockIndex(blocks []Block, category string) int {
	return slices.IndexFunc(blocks, func(b Block) bool { return b.Category == category })
}

// MoveCategoryBlock swaps the block holding category with its neighbour in
// the given direction, flattens, and renumbers. Items inside each block keep
// their relative order. When a category occurs in several blocks the first
// one is moved. On error the input is returned unchanged.
func MoveCategoryBlock(items []models.Item, category string, dir Direction) ([]models.Item, error) {
	blocks := Partition(SortByOrder(items))

	idx := BlockIndex(blocks, category)
	if idx < 0 {
		return items, fmt.Errorf("%w: %q", ErrNotFound, category)
	}

	target := idx - 1
	if dir == Down {
		target = idx + 1
	}
	if target < 0 || target >= len(blocks) {
		return items, fmt.Errorf("%w: %q is block %d of %d, cannot move %s",
			ErrOutOfBounds, category, idx, len(blocks), dir)
	}

	blocks[idx], blocks[target] = blocks[target], blocks[idx]
	return Renumber(Flatten(blocks)), nil
}

// CanMove reports whether MoveCategoryBlock would succeed. Callers use it to
// disable move controls.
func CanMove(items []models.Item, category string, dir Direction) bool {
	blocks := Partition(SortByOrder(items))
	idx := BlockIndex(blocks, category)
	if idx < 0 {
		return false
	}
	if dir == Up {
		return idx > 0
	}
	return idx < len(blocks)-1
}

// Diff returns the order assignments in after whose value differs from the
// same item in before. Items absent from before are always included.
func Diff(before, after []models.Item) []models.ItemOrder {
	prev := make(map[string]int, len(before))
	for _, item := range before {
		prev[item.ID] = item.Order
	}

	var changed []models.ItemOrder
	for _, item := range after {
		if order, ok := prev[item.ID]; ok && order == item.Order {
			continue
		}
		changed = append(changed, models.ItemOrder{ID: item.ID, Order: item.Order})
	}
	return changed
}

// NextOrder returns the order value that appends after every item.
func NextOrder(items []models.Item) int {
	if len(items) == 0 {
		return 0
	}
	return slices.MaxFunc(items, func(a, b models.Item) int {
		return cmp.Compare(a.Order, b.Order)
	}).Order + 1
}
