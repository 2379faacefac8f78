package api

type GetPersonalizationRequest struct{}

type GetPersonalizationResponse struct {
	Categories      []*Category       `json:"categories"`
	Templates       []*Template       `json:"templates"`
	NameCategoryMap map[string]string `json:"nameCategoryMap"`
	Icons           []string          `json:"icons"`
}

// SavePersonalizationRequest replaces the sections that are present.
// A missing field keeps the stored section; an empty list clears it.
type SavePersonalizationRequest struct {
	Categories      []*Category       `json:"categories"`
	Templates       []*Template       `json:"templates"`
	NameCategoryMap map[string]string `json:"nameCategoryMap"`
}

type SavePersonalizationResponse struct {
	Categories      []*Category       `json:"categories"`
	Templates       []*Template       `json:"templates"`
	NameCategoryMap map[string]string `json:"nameCategoryMap"`
	Icons           []string          `json:"icons"`
}
