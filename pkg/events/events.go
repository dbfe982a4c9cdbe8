package events

import "time"

const (
	TypeUserRegistered = "user.registered"
	TypeBookingCreated = "booking.created"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}
