package models

// Item represents one shopping-list entry.
type Item struct {
	// ID is assigned by the store at creation and never changes.
	ID string

	// ListID is the owning list; immutable after creation.
	ListID string

	// Name is free text and the key used for category inference.
	Name string

	// Description is an optional longer text.
	Description string

	// Quantity defaults to 1.
	Quantity int

	// Completed and Missing are independent flags.
	Completed bool
	Missing   bool

	// Comment is an optional note.
	Comment string

	// Color is a CSS color string.
	Color string

	// Category references a Category value, or a free-form new value.
	// Blank means uncategorized and is a valid grouping key.
	Category string

	// Order defines the item's position within its list.
	Order int

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64
}

// ItemOrder is a single order assignment produced by the ordering engine.
type ItemOrder struct {
	ID    string
	Order int
}

// ItemPatch holds the fields of a partial item update.
// Nil pointers leave the stored value untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Quantity    *int
	Completed   *bool
	Missing     *bool
	Comment     *string
	Color       *string
	Category    *string
	Order       *int
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Quantity == nil &&
		p.Completed == nil && p.Missing == nil && p.Comment == nil &&
		p.Color == nil && p.Category == nil && p.Order == nil
}

// Apply returns a copy of item with the patch applied.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
	if p.Missing != nil {
		item.Missing = *p.Missing
	}
	if p.Comment != nil {
		item.Comment = *p.Comment
	}
	if p.Color != nil {
		item.Color = *p.Color
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Order != nil {
		item.Order = *p.Order
	}
	return item
}
