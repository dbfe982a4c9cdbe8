package model

import "time"

// Booking is a submitted booking request. It never references a user
// account; the two record kinds are fully decoupled.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	Date      time.Time `json:"date" bson:"date"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// BookingSubmission carries the raw booking form fields before the date
// has been parsed.
type BookingSubmission struct {
	Name  string `validate:"required,min=2,max=100"`
	Phone string `validate:"required,min=5,max=20"`
	Email string `validate:"required,email"`
	Date  string `validate:"required"`
}
