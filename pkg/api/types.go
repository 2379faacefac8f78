// Package api defines the request and response messages exchanged with the
// shoplist Connect services. Messages travel as JSON; see package apiconnect
// for the procedures, handlers and clients.
package api

// User is the public view of an account. The password hash never leaves the server.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type List struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Completed    bool   `json:"completed"`
	FinishedAt   int64  `json:"finishedAt,omitempty"`
	DefaultColor string `json:"defaultColor"`
	CreatedAt    int64  `json:"createdAt"`
}

type Item struct {
	ID          string `json:"id"`
	ListID      string `json:"listId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Completed   bool   `json:"completed"`
	Missing     bool   `json:"missing"`
	Comment     string `json:"comment,omitempty"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	CreatedAt   int64  `json:"createdAt"`
}

// Block is a maximal run of consecutive items sharing a category, in display order.
type Block struct {
	Category string   `json:"category"`
	ItemIDs  []string `json:"itemIds"`
	// CanMoveUp and CanMoveDown report whether MoveCategory for this block
	// would succeed. Only the first block of a split category is movable.
	CanMoveUp   bool `json:"canMoveUp"`
	CanMoveDown bool `json:"canMoveDown"`
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

type Template struct {
	Name  string          `json:"name"`
	Items []*TemplateItem `json:"items"`
}

type TemplateItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Color       string `json:"color,omitempty"`
	Category    string `json:"category,omitempty"`
}
