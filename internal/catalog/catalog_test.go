package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/shoplist/internal/models"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.NotEmpty(t, c.Categories)
	assert.Equal(t, "", c.Categories[0].Value, "first category is the blank one")
	assert.True(t, c.HasIcon("groceries"))
	assert.Len(t, c.Templates, 2)
	assert.Equal(t, 12, c.Templates[0].Items[2].Quantity)
}

func TestLoad_TOMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[templates]]
name = "Hardware run"

[[templates.items]]
name = "Screws"
quantity = 50
category = "tools"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Templates, 1)
	assert.Equal(t, "Hardware run", c.Templates[0].Name)
	assert.Equal(t, 50, c.Templates[0].Items[0].Quantity)
	assert.NotEmpty(t, c.Categories, "sections absent from the file keep defaults")
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	content := `
categories:
  - value: ""
    label: Uncategorized
  - value: produce
    label: Produce
    icon: flora
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Categories, 2)
	assert.Equal(t, "flora", c.Categories[1].Icon)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestMergeCategories(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	merged := c.MergeCategories([]models.Category{
		{Value: "groceries", Label: "Food"},
		{Value: "pets", Label: "Pets", Icon: "favorite"},
	})

	require.Len(t, merged, len(c.Categories)+1)
	assert.Equal(t, models.Category{Value: "groceries", Label: "Food", Icon: "groceries"}, merged[1])
	assert.Equal(t, "pets", merged[len(merged)-1].Value)
	assert.Equal(t, "Groceries", c.Categories[1].Label, "defaults must not change")
}

func TestSanitizeCategories(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	got := c.SanitizeCategories([]models.Category{
		{Value: " pets ", Label: "Pets", Icon: "nope"},
		{Value: "pets", Label: "Pets again"},
		{Value: "x", Label: "  "},
		{Value: "", Label: "None"},
	})

	assert.Equal(t, []models.Category{
		{Value: "pets", Label: "Pets"},
		{Value: "", Label: "None"},
	}, got)
}

func TestEnsureCategory(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	registry := c.Categories

	grown, added := c.EnsureCategory(registry, "Tools", "")
	require.True(t, added)
	assert.Equal(t, models.Category{Value: "Tools", Label: "Tools", Icon: "tools"}, grown[len(grown)-1])
	assert.Len(t, registry, len(c.Categories), "input registry must not grow")

	_, added = c.EnsureCategory(grown, "Tools", "")
	assert.False(t, added)

	_, added = c.EnsureCategory(registry, "  ", "")
	assert.False(t, added)

	withIcon, added := c.EnsureCategory(registry, "garden", "flora")
	require.True(t, added)
	assert.Equal(t, "flora", withIcon[len(withIcon)-1].Icon)
}

func TestTemplateItems(t *testing.T) {
	tmpl := models.Template{
		Name: "Test",
		Items: []models.TemplateItem{
			{Name: "Milk"},
			{Name: "Eggs", Quantity: 12, Color: "#ff0000", Category: "dairy"},
		},
	}

	items := TemplateItems(tmpl, "list-1", "#00ff00", 5)

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "#00ff00", items[0].Color)
	assert.Equal(t, 5, items[0].Order)
	assert.Equal(t, "#ff0000", items[1].Color)
	assert.Equal(t, 6, items[1].Order)
	assert.Equal(t, "list-1", items[1].ListID)
}

func TestFindTemplate(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tmpl, ok := FindTemplate(c.Templates, "weekly GROCERIES")
	require.True(t, ok)
	assert.Len(t, tmpl.Items, 3)

	_, ok = FindTemplate(c.Templates, "nope")
	assert.False(t, ok)
}
