package lineitem

// CreateLineItemInput is the body of POST /api/line-items.
type CreateLineItemInput struct {
	CategoryID string `json:"categoryId" validate:"required"`
	Name       string `json:"name" validate:"required"`
}

func (CreateLineItemInput) ValidationMessage() string { return "categoryId and name are required" }

// RenameLineItemInput is the body of PUT /api/line-items/:id.
type RenameLineItemInput struct {
	Name string `json:"name"`
}
