package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomCreated confirms room creation to the requester.
	EventRoomCreated EventKind = iota
	// EventJoined delivers the room's message history to a joiner.
	EventJoined
	// EventRoomMessage notifies room members about a chat message.
	EventRoomMessage
	// EventUserJoined notifies room members that someone joined.
	EventUserJoined
	// EventUserLeft notifies room members that someone left.
	EventUserLeft
	// EventError notifies the originating client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Room    string
	User    string
	Count   int       // member count for EventUserJoined / EventUserLeft
	Message Message   // for EventRoomMessage
	History []Message // for EventJoined
	Error   *CoreError
}
