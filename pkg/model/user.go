package model

import "time"

// User is an account record. The email is unique across the collection,
// enforced by a unique index. Only the bcrypt hash of the password is stored.
type User struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	FullName     string    `json:"fullname" bson:"fullname"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Registration carries the raw signup form fields.
type Registration struct {
	FullName        string `validate:"required,min=2,max=100"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}
