package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/ordering"
)

func TestRenderList(t *testing.T) {
	items := []models.Item{
		{Name: "Milk", Category: "groceries", Order: 0, Quantity: 2},
		{Name: "Soap", Category: "household", Order: 1, Quantity: 1, Completed: true},
		{Name: "Eggs", Category: "groceries", Order: 2, Quantity: 1, Missing: true, Comment: "free range"},
		{Name: "Tape", Category: "", Order: 3, Quantity: 1},
	}
	labels := categoryLabels([]models.Category{
		{Value: "groceries", Label: "Groceries"},
		{Value: "household", Label: "Household"},
	})

	var buf bytes.Buffer
	renderList(&buf, &models.List{Name: "Weekly"}, ordering.Partition(items), labels)
	out := buf.String()

	assert.Contains(t, out, "Weekly")
	assert.Equal(t, 2, strings.Count(out, "Groceries"), "split category renders as two blocks")
	assert.Contains(t, out, "Milk x2")
	assert.Contains(t, out, iconDone+" Soap")
	assert.Contains(t, out, "Eggs (missing)")
	assert.Contains(t, out, "free range")
	assert.Contains(t, out, "Uncategorized")

	assert.Less(t, strings.Index(out, "Milk"), strings.Index(out, "Soap"))
	assert.Less(t, strings.Index(out, "Soap"), strings.Index(out, "Eggs"))
}

func TestRenderList_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderList(&buf, &models.List{Name: "Empty", Completed: true}, nil, nil)

	assert.Contains(t, buf.String(), "(completed)")
	assert.Contains(t, buf.String(), "no items")
}

func TestRenderList_UnknownCategoryUsesValue(t *testing.T) {
	var buf bytes.Buffer
	items := []models.Item{{Name: "Screws", Category: "tools", Quantity: 1}}
	renderList(&buf, &models.List{Name: "DIY"}, ordering.Partition(items), map[string]string{})

	assert.Contains(t, buf.String(), "tools")
}
