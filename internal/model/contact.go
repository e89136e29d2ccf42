package model

import "time"

// ContactSubmission is a message left through the website contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactCreate is the client-supplied shape of a contact form submission.
type ContactCreate struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"required"`
	Subject *string `json:"subject" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

// ApplyTo copies the client-owned fields onto s.
func (c *ContactCreate) ApplyTo(s *ContactSubmission) {
	s.Name = deref(c.Name)
	s.Email = deref(c.Email)
	s.Phone = deref(c.Phone)
	s.Subject = deref(c.Subject)
	s.Message = deref(c.Message)
}
