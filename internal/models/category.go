package models

// Category represents a classification label.
type Category struct {
	// Value is the stable identifier. Blank means "uncategorized".
	Value string `json:"value" yaml:"value" toml:"value"`

	// Label is the display text.
	Label string `json:"label" yaml:"label" toml:"label"`

	// Icon is an optional icon key (see catalog.IconKeys).
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
}

// Template is a named set of items used to seed a list.
type Template struct {
	Name  string         `json:"name" yaml:"name" toml:"name"`
	Items []TemplateItem `json:"items" yaml:"items" toml:"items"`
}

// TemplateItem is one entry of a Template. Zero values fall back to item defaults.
type TemplateItem struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty" yaml:"quantity,omitempty" toml:"quantity,omitempty"`
	Comment     string `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
}

// NameCategoryMap maps a normalized item name (trimmed, lowercased) to a category value.
type NameCategoryMap map[string]string

// Personalization is the per-user document holding categories, templates and
// the name->category map.
type Personalization struct {
	UserID          string
	Categories      []Category
	Templates       []Template
	NameCategoryMap NameCategoryMap

	// UpdatedAt is the Unix timestamp of the last save.
	UpdatedAt int64
}
