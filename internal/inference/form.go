package inference

import (
	"strings"

	"github.com/mmynk/shoplist/internal/models"
)

// Context is the read-only state consulted on a name change.
type Context struct {
	Names models.NameCategoryMap
	Items []models.Item
}

// Mismatch is an advisory warning: the name changed after a category was
// filled in automatically for a different name.
type Mismatch struct {
	// AssignedFor is the normalized name that produced the category.
	AssignedFor string
	Category    string
	Name        string
}

// Form is the session-scoped state of the add/edit item form.
// The zero value is an empty form composing a new item.
type Form struct {
	Name      string
	Category  string
	EditingID string

	// Warning is non-nil while a possible category mismatch is shown.
	Warning *Mismatch

	clearedForName    string
	autoAssignedFor   string
	autoAssignedValue string
}

// StartEdit loads an existing item into the form.
func (f *Form) StartEdit(item models.Item) {
	*f = Form{
		Name:      item.Name,
		Category:  item.Category,
		EditingID: item.ID,
	}
}

// Reset clears the form after a successful add or edit.
func (f *Form) Reset() {
	*f = Form{}
}

// SetName updates the name field and, when composing a new item, runs
// inference. Renaming an item being edited never fills in a category.
func (f *Form) SetName(name string, c Context) {
	f.Name = name
	key := Normalize(name)
	if key == "" {
		return
	}

	if f.clearedForName != "" && key != f.clearedForName {
		f.clearedForName = ""
	}
	f.checkMismatch(key)

	if key == f.clearedForName {
		return
	}
	if f.EditingID != "" || strings.TrimSpace(f.Category) != "" {
		return
	}

	s, ok := Suggest(name, c.Names, c.Items, "")
	if !ok {
		return
	}
	f.Category = s.Category
	f.autoAssignedFor = key
	f.autoAssignedValue = s.Category
}

func (f *Form) checkMismatch(key string) {
	if f.autoAssignedFor == "" || f.Category != f.autoAssignedValue {
		f.Warning = nil
		return
	}
	if key == f.autoAssignedFor {
		f.Warning = nil
		return
	}
	f.Warning = &Mismatch{
		AssignedFor: f.autoAssignedFor,
		Category:    f.autoAssignedValue,
		Name:        f.Name,
	}
}

// SetCategory records an explicit category choice. Clearing the field while
// a name is present suppresses inference for that name until the name changes.
func (f *Form) SetCategory(value string) {
	f.Category = value
	f.Warning = nil
	f.autoAssignedFor = ""
	f.autoAssignedValue = ""

	if strings.TrimSpace(value) == "" {
		f.clearedForName = Normalize(f.Name)
	} else {
		f.clearedForName = ""
	}
}

// DismissWarning hides the mismatch warning and keeps the category as an
// explicit choice.
func (f *Form) DismissWarning() {
	f.SetCategory(f.Category)
}

// CategoryCleared reports whether the user explicitly emptied the category
// for the current name.
func (f *Form) CategoryCleared() bool {
	key := Normalize(f.Name)
	return key != "" && f.Category == "" && f.clearedForName == key
}

// AutoAssigned reports whether the current category was filled in by inference.
func (f *Form) AutoAssigned() bool {
	return f.autoAssignedFor != "" && f.Category == f.autoAssignedValue
}
