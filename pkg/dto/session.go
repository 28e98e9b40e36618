package dto

import "github.com/google/uuid"

// SessionUser is the identity carried by an authenticated request.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Image string    `json:"image"`
}

// Session is the resolved session for a request.
type Session struct {
	User SessionUser `json:"user"`
}

// NewSession builds a session from a stored user.
func NewSession(u *UserRead) *Session {
	return &Session{User: SessionUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
	}}
}
