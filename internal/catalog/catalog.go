// Package catalog holds the category registry and list templates: the
// built-in defaults, optional operator overrides loaded from a YAML or TOML
// file, and the merge rules applied to a user's personalization.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/shoplist/internal/models"
)

//go:embed default.yaml
var defaultYAML []byte

// Catalog is the set of defaults every user starts with.
type Catalog struct {
	Icons      []string          `yaml:"icons" toml:"icons"`
	Categories []models.Category `yaml:"categories" toml:"categories"`
	Templates  []models.Template `yaml:"templates" toml:"templates"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(defaultYAML, c); err != nil {
		return nil, fmt.Errorf("failed to parse built-in catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file. The format is chosen by extension (.toml,
// .yaml, .yml). Sections missing from the file keep the built-in values.
func Load(path string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var override Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &override)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &override)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	if len(override.Icons) > 0 {
		c.Icons = override.Icons
	}
	if len(override.Categories) > 0 {
		c.Categories = override.Categories
	}
	if len(override.Templates) > 0 {
		c.Templates = override.Templates
	}
	return c, nil
}

// HasIcon reports whether key is a known icon key.
func (c *Catalog) HasIcon(key string) bool {
	return slices.Contains(c.Icons, key)
}

// GuessIcon returns the icon key matching value case-insensitively, or "".
func (c *Catalog) GuessIcon(value string) string {
	for _, key := range c.Icons {
		if strings.EqualFold(key, strings.TrimSpace(value)) {
			return key
		}
	}
	return ""
}

// MergeCategories starts from the defaults and applies personal entries:
// an entry with a known value replaces the default (keeping the default icon
// when it has none), any other entry is appended.
func (c *Catalog) MergeCategories(personal []models.Category) []models.Category {
	merged := slices.Clone(c.Categories)
	for _, p := range personal {
		idx := slices.IndexFunc(merged, func(m models.Category) bool { return m.Value == p.Value })
		if idx < 0 {
			merged = append(merged, p)
			continue
		}
		if p.Icon == "" {
			p.Icon = merged[idx].Icon
		}
		merged[idx] = p
	}
	return merged
}

// SanitizeCategories drops entries without a label or with a duplicate value
// and clears unknown icon keys.
func (c *Catalog) SanitizeCategories(in []models.Category) []models.Category {
	out := make([]models.Category, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, cat := range in {
		cat.Value = strings.TrimSpace(cat.Value)
		cat.Label = strings.TrimSpace(cat.Label)
		if cat.Label == "" || seen[cat.Value] {
			continue
		}
		if cat.Icon != "" && !c.HasIcon(cat.Icon) {
			cat.Icon = ""
		}
		seen[cat.Value] = true
		out = append(out, cat)
	}
	return out
}

// EnsureCategory appends value to registry when no entry carries it. The
// label defaults to the value and the icon to iconKey, or a guess from the
// value when iconKey is empty. It reports whether registry grew.
func (c *Catalog) EnsureCategory(registry []models.Category, value, iconKey string) ([]models.Category, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return registry, false
	}
	if slices.ContainsFunc(registry, func(m models.Category) bool { return m.Value == value }) {
		return registry, false
	}
	if iconKey == "" || !c.HasIcon(iconKey) {
		iconKey = c.GuessIcon(value)
	}
	return append(slices.Clone(registry), models.Category{Value: value, Label: value, Icon: iconKey}), true
}

// TemplatesFor returns personal templates when the user saved any, the
// defaults otherwise.
func (c *Catalog) TemplatesFor(personal []models.Template) []models.Template {
	if len(personal) > 0 {
		return personal
	}
	return c.Templates
}

// FindTemplate looks a template up by name (case-insensitive).
func FindTemplate(templates []models.Template, name string) (models.Template, bool) {
	for _, t := range templates {
		if strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name)) {
			return t, true
		}
	}
	return models.Template{}, false
}

// TemplateItems expands a template into items for listID, applying item
// defaults and assigning consecutive orders starting at firstOrder.
func TemplateItems(t models.Template, listID, defaultColor string, firstOrder int) []models.Item {
	items := make([]models.Item, len(t.Items))
	for i, ti := range t.Items {
		quantity := ti.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		color := ti.Color
		if color == "" {
			color = defaultColor
		}
		items[i] = models.Item{
			ListID:      listID,
			Name:        ti.Name,
			Description: ti.Description,
			Quantity:    quantity,
			Comment:     ti.Comment,
			Color:       color,
			Category:    ti.Category,
			Order:       firstOrder + i,
		}
	}
	return items
}
