package api

type CreateListRequest struct {
	Name         string `json:"name"`
	DefaultColor string `json:"defaultColor,omitempty"`
	// TemplateName seeds the list with the items of the named template.
	TemplateName string `json:"templateName,omitempty"`
}

type CreateListResponse struct {
	List  *List   `json:"list"`
	Items []*Item `json:"items"`
}

type GetListRequest struct {
	ListID string `json:"listId"`
}

type GetListResponse struct {
	List *List `json:"list"`
}

type ListListsRequest struct{}

type ListListsResponse struct {
	Lists []*List `json:"lists"`
}

type UpdateListRequest struct {
	ListID       string  `json:"listId"`
	Name         *string `json:"name,omitempty"`
	DefaultColor *string `json:"defaultColor,omitempty"`
	Completed    *bool   `json:"completed,omitempty"`
}

type UpdateListResponse struct {
	List *List `json:"list"`
}

type DeleteListRequest struct {
	ListID string `json:"listId"`
}

type DeleteListResponse struct{}

type ApplyTemplateRequest struct {
	ListID       string `json:"listId"`
	TemplateName string `json:"templateName"`
}

type ApplyTemplateResponse struct {
	Items []*Item `json:"items"`
}
