package core

import "time"

// Room groups clients joined under the same code. It also owns the room's
// message history and activity timestamp. All access is serialized through
// the hub loop.
type Room struct {
	Code       string
	clients    map[*Client]struct{}
	history    []Message
	lastActive time.Time
}

// NewRoom constructs an empty room with lastActive set to now.
func NewRoom(code string, now time.Time) *Room {
	return &Room{
		Code:       code,
		clients:    make(map[*Client]struct{}),
		lastActive: now,
	}
}

// AddClient inserts a client into the room. Returns true if newly added.
func (r *Room) AddClient(c *Client) bool {
	if _, exists := r.clients[c]; exists {
		return false
	}
	r.clients[c] = struct{}{}
	return true
}

// RemoveClient deletes a client from the room. Returns true if removed.
func (r *Room) RemoveClient(c *Client) bool {
	if _, exists := r.clients[c]; !exists {
		return false
	}
	delete(r.clients, c)
	return true
}

// Has reports whether the client is a member of the room.
func (r *Room) Has(c *Client) bool {
	_, exists := r.clients[c]
	return exists
}

// Broadcast sends an event to all clients in the room. Delivery is
// best-effort per member; a full buffer on one member never blocks the rest.
func (r *Room) Broadcast(event *Event) {
	for client := range r.clients {
		client.send(event)
	}
}

// Append records a message in the room's history. History grows unbounded
// for the life of the room; it is reclaimed with the room.
func (r *Room) Append(msg Message) {
	r.history = append(r.history, msg)
}

// History returns a copy of the message history in insertion order. The copy
// keeps the snapshot stable while the hub keeps appending.
func (r *Room) History() []Message {
	out := make([]Message, len(r.history))
	copy(out, r.history)
	return out
}

// Touch refreshes the activity timestamp.
func (r *Room) Touch(now time.Time) {
	r.lastActive = now
}

// IdleSince reports how long the room has been without activity.
func (r *Room) IdleSince(now time.Time) time.Duration {
	return now.Sub(r.lastActive)
}

// MemberCount returns the number of clients in the room.
func (r *Room) MemberCount() int {
	return len(r.clients)
}

// Empty returns true if no clients are in the room.
func (r *Room) Empty() bool {
	return len(r.clients) == 0
}
