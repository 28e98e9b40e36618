package category

// CreateCategoryInput is the body of POST /api/categories.
type CreateCategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Type  string `json:"type" validate:"required" enums:"ASSET,LIABILITY"`
	Color string `json:"color" example:"#0d9488"`
}

func (CreateCategoryInput) ValidationMessage() string { return "Name and type are required" }

// UpdateCategoryInput is the body of PUT /api/categories/:id. The type of
// a category cannot be changed.
type UpdateCategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
