package models

import "time"

// EventTypes is the fixed set of events a band can be booked for.
var EventTypes = []string{
	"Wedding",
	"Corporate Event",
	"Birthday Party",
	"Funeral / Celebration of Life",
	"Church / Religious Event",
	"Concert",
	"Other",
}

// BookingRequest is an incoming band-booking form submission
type BookingRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"date"`
	EventType string `json:"eventType"`
	Details   string `json:"details,omitempty"`
}

// Booking is a stored band-booking request
type Booking struct {
	ID string `json:"id"`
	BookingRequest
	CreatedAt time.Time `json:"createdAt"`
}
