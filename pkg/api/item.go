package api

type ListItemsRequest struct {
	ListID string `json:"listId"`
	// Category restricts the result to one category. Blank lists everything.
	Category string `json:"category,omitempty"`
}

type ListItemsResponse struct {
	Items  []*Item  `json:"items"`
	Blocks []*Block `json:"blocks"`
}

type CreateItemRequest struct {
	ListID       string `json:"listId"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Quantity     *int   `json:"quantity,omitempty"`
	Missing      bool   `json:"missing,omitempty"`
	Comment      string `json:"comment,omitempty"`
	Color        string `json:"color,omitempty"`
	Category     string `json:"category,omitempty"`
	// CategoryIcon is the icon key used if Category is new to the user.
	CategoryIcon string `json:"categoryIcon,omitempty"`
	// Order is the position to insert at; past the end appends.
	Order *int `json:"order,omitempty"`
}

type CreateItemResponse struct {
	Item *Item `json:"item"`
}

type UpdateItemRequest struct {
	ListID       string  `json:"listId"`
	ItemID       string  `json:"itemId"`
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	Completed    *bool   `json:"completed,omitempty"`
	Missing      *bool   `json:"missing,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	Color        *string `json:"color,omitempty"`
	Category     *string `json:"category,omitempty"`
	// CategoryIcon is the icon key used if Category is new to the user.
	CategoryIcon string  `json:"categoryIcon,omitempty"`
	// Order moves the item to that position; the rest of the list shifts.
	Order *int `json:"order,omitempty"`
}

type UpdateItemResponse struct {
	Item *Item `json:"item"`
}

type DeleteItemRequest struct {
	ListID string `json:"listId"`
	ItemID string `json:"itemId"`
}

type DeleteItemResponse struct{}

type BulkCompleteRequest struct {
	ListID  string   `json:"listId"`
	ItemIDs []string `json:"itemIds"`
}

type BulkCompleteResponse struct {
	Items []*Item `json:"items"`
}

type BulkDeleteRequest struct {
	ListID  string   `json:"listId"`
	ItemIDs []string `json:"itemIds"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// MoveItemRequest moves the item at position From to position To of the
// list's display order.
type MoveItemRequest struct {
	ListID string `json:"listId"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

type MoveItemResponse struct {
	Items []*Item `json:"items"`
}

// MoveCategoryRequest swaps the category's block with its neighbor.
// Direction is "up" or "down".
type MoveCategoryRequest struct {
	ListID    string `json:"listId"`
	Category  string `json:"category"`
	Direction string `json:"direction"`
}

type MoveCategoryResponse struct {
	Items  []*Item  `json:"items"`
	Blocks []*Block `json:"blocks"`
}

type SuggestCategoryRequest struct {
	ListID        string `json:"listId"`
	Name          string `json:"name"`
	ExcludeItemID string `json:"excludeItemId,omitempty"`
}

type SuggestCategoryResponse struct {
	Found    bool   `json:"found"`
	Category string `json:"category"`
	// Source is "name_map" or "list" when Found.
	Source string `json:"source,omitempty"`
	// Options is the category registry reordered for this name.
	Options []*Category `json:"options"`
}
