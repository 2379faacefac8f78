package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/internal/catalog"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/ordering"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/internal/storage/sqlite"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorSuccess = lipgloss.Color("#00E676")
	colorDanger  = lipgloss.Color("#FF5252")
	colorMuted   = lipgloss.Color("#636363")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleBlock = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Underline(true)

	styleCompleted = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Strikethrough(true)

	styleMissing = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

const (
	iconDone    = "✓"
	iconMissing = "✗"
	iconOpen    = "·"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a list grouped by category blocks",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("list", "", "list ID")
	_ = showCmd.MarkFlagRequired("list")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	listID, _ := cmd.Flags().GetString("list")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := sqlite.OpenReadOnly(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	list, err := store.GetList(ctx, listID)
	if err != nil {
		return fmt.Errorf("list %s: %w", listID, err)
	}
	items, err := store.ListItems(ctx, list.ID, storage.ItemFilter{})
	if err != nil {
		return err
	}
	doc, err := store.GetPersonalization(ctx, list.UserID)
	if err != nil {
		return err
	}
	var personal []models.Category
	if doc != nil {
		personal = doc.Categories
	}

	renderList(cmd.OutOrStdout(), list, ordering.Partition(items), categoryLabels(cat.MergeCategories(personal)))
	return nil
}

func categoryLabels(registry []models.Category) map[string]string {
	labels := make(map[string]string, len(registry))
	for _, c := range registry {
		labels[c.Value] = c.Label
	}
	return labels
}

// renderList writes one header per block followed by its items. Blocks keep
// list order, so a split category is printed twice.
func renderList(w io.Writer, list *models.List, blocks []ordering.Block, labels map[string]string) {
	title := list.Name
	if list.Completed {
		title += " " + styleMuted.Render("(completed)")
	}
	fmt.Fprintln(w, styleTitle.Render(title))

	if len(blocks) == 0 {
		fmt.Fprintln(w, styleMuted.Render("  no items"))
		return
	}

	for _, block := range blocks {
		label, ok := labels[block.Category]
		if !ok || label == "" {
			label = block.Category
		}
		if label == "" {
			label = "Uncategorized"
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, styleBlock.Render(label))
		for _, item := range block.Items {
			fmt.Fprintln(w, "  "+renderItem(item))
		}
	}
}

func renderItem(item models.Item) string {
	var b strings.Builder
	text := item.Name
	if item.Quantity > 1 {
		text = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}

	switch {
	case item.Missing:
		b.WriteString(styleMissing.Render(iconMissing + " " + text + " (missing)"))
	case item.Completed:
		b.WriteString(styleCompleted.Render(iconDone + " " + text))
	default:
		b.WriteString(iconOpen + " " + text)
	}

	if item.Comment != "" {
		b.WriteString(" " + styleMuted.Render("- "+item.Comment))
	}
	return b.String()
}
