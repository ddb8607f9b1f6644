package core

// Client is a connected participant as seen by the core layer. The transport
// owns the Commands side; the hub is the only writer (and closer) of Events.
type Client struct {
	// ID identifies this connection; one per transport connection.
	ID string
	// SenderID is the client-chosen stable identity. It survives reconnects
	// and is never verified, it only distinguishes "my messages" client-side.
	SenderID string
	// Name is the display name supplied at join time. May collide.
	Name string

	Commands chan *Command
	Events   chan *Event
	Rooms    map[string]struct{}

	// done is closed by the hub when the client unregisters, stopping the
	// command pump.
	done chan struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 32),
		Rooms:    make(map[string]struct{}),
		done:     make(chan struct{}),
	}
}

// send delivers an event without blocking the hub loop. Slow consumers drop
// events rather than stall delivery to the rest of the room.
func (c *Client) send(event *Event) {
	select {
	case c.Events <- event:
	default:
	}
}
