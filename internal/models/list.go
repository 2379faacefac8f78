package models

// DefaultColor is the item color used when neither the item nor its list supplies one.
const DefaultColor = "#ffffff"

// List represents a named shopping list owned by one user.
type List struct {
	// ID is the unique identifier for the list (UUID format).
	ID string

	// UserID is the owner of the list.
	UserID string

	// Name is the display name of the list (e.g., "Weekly groceries").
	Name string

	// Completed marks the whole list as done.
	Completed bool

	// FinishedAt is the Unix timestamp when the list was completed, zero while open.
	FinishedAt int64

	// DefaultColor is applied to new items that don't specify a color.
	DefaultColor string

	// CreatedAt is the Unix timestamp when the list was created.
	CreatedAt int64
}
