// Package inference guesses an item's category from its name.
//
// Lookups consult the user's persisted name->category map first and the
// items already loaded for the current list second. An explicit choice in
// the form is never overwritten. The only mutation is Record, which the
// caller persists after a successful add or edit.
package inference

import (
	"maps"
	"strings"

	"github.com/mmynk/shoplist/internal/models"
)

// Source identifies where a suggestion came from.
type Source int

const (
	SourceNone Source = iota
	SourceNameMap
	SourceList
)

func (s Source) String() string {
	switch s {
	case SourceNameMap:
		return "name_map"
	case SourceList:
		return "list"
	default:
		return "none"
	}
}

// Suggestion is a category guess for a name.
type Suggestion struct {
	Category string
	Source   Source
}

// Normalize returns the inference key for an item name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Suggest looks name up in the name map, then in items (skipping excludeID
// and items without a category). It has no side effects.
func Suggest(name string, names models.NameCategoryMap, items []models.Item, excludeID string) (Suggestion, bool) {
	key := Normalize(name)
	if key == "" {
		return Suggestion{}, false
	}

	if category := names[key]; category != "" {
		return Suggestion{Category: category, Source: SourceNameMap}, true
	}

	for _, item := range items {
		if excludeID != "" && item.ID == excludeID {
			continue
		}
		if item.Category == "" || Normalize(item.Name) != key {
			continue
		}
		return Suggestion{Category: item.Category, Source: SourceList}, true
	}

	return Suggestion{}, false
}

// Record upserts name -> category into a copy of names. It returns the
// original map and false when either side is blank or nothing changes.
func Record(names models.NameCategoryMap, name, category string) (models.NameCategoryMap, bool) {
	key := Normalize(name)
	category = strings.TrimSpace(category)
	if key == "" || category == "" {
		return names, false
	}
	if current, ok := names[key]; ok && current == category {
		return names, false
	}

	next := make(models.NameCategoryMap, len(names)+1)
	maps.Copy(next, names)
	next[key] = category
	return next, true
}

// Options orders the registry for a category picker: the mapped category
// first, then categories used by same-named items in the list, then the
// rest of the registry in its own order. Values used in the list but absent
// from the registry are skipped.
func Options(name string, names models.NameCategoryMap, items []models.Item, registry []models.Category) []models.Category {
	byValue := make(map[string]models.Category, len(registry))
	for _, c := range registry {
		byValue[c.Value] = c
	}

	seen := make(map[string]bool, len(registry))
	out := make([]models.Category, 0, len(registry))
	push := func(value string) {
		c, ok := byValue[value]
		if !ok || seen[value] {
			return
		}
		seen[value] = true
		out = append(out, c)
	}

	if key := Normalize(name); key != "" {
		if mapped, ok := names[key]; ok {
			push(mapped)
		}
		for _, item := range items {
			if Normalize(item.Name) == key {
				push(item.Category)
			}
		}
	}
	for _, c := range registry {
		push(c.Value)
	}
	return out
}
