package core

import "time"

// Message is the domain model for a relayed chat message. Once constructed
// by the hub it is never mutated; it lives exactly as long as its room.
type Message struct {
	ID         string
	Room       string
	SenderID   string
	SenderName string
	Text       string
	CreatedAt  time.Time
}
