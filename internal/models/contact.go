package models

import "time"

// ContactRequest is an incoming contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactMessage is a stored contact form submission
type ContactMessage struct {
	ID string `json:"id"`
	ContactRequest
	CreatedAt time.Time `json:"createdAt"`
}
