package model

import "time"

// Admin is a stored administrator account. The password hash never leaves
// the server; use View for responses.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminView is the redacted representation returned to clients.
type AdminView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// View returns the redacted admin.
func (a *Admin) View() AdminView {
	return AdminView{ID: a.ID, Email: a.Email, Name: a.Name}
}

// AdminRegistration carries the form fields of POST /api/admin/register.
type AdminRegistration struct {
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,max=72"`
	Name     *string `json:"name" validate:"required"`
}

// AdminLogin carries the form fields of POST /api/admin/login.
type AdminLogin struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// AuthResponse is returned by successful registration and login.
type AuthResponse struct {
	Token string    `json:"token"`
	Admin AdminView `json:"admin"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
