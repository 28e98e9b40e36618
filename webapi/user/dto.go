package user

// UpdateSettingsInput is the body of PATCH /api/settings.
type UpdateSettingsInput struct {
	Currency string `json:"currency" validate:"required" example:"USD"`
}

func (UpdateSettingsInput) ValidationMessage() string { return "Invalid currency" }
