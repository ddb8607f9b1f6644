package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSetIdentity associates the connection with a stable sender id.
	CommandSetIdentity CommandKind = iota
	// CommandCreateRoom allocates a fresh room and replies with its code.
	CommandCreateRoom
	// CommandJoinRoom subscribes the client to a room by code.
	CommandJoinRoom
	// CommandLeaveRoom unsubscribes the client from a room.
	CommandLeaveRoom
	// CommandSendMessage delivers a chat message to room members.
	CommandSendMessage
)

// Command represents an action requested by a client. The hub is the sole
// consumer; commands never carry replies, results come back as Events.
type Command struct {
	Kind CommandKind
	Room string
	// Name is the display name supplied with a join.
	Name string
	// SenderID is the stable identity supplied with set-identity.
	SenderID string
	// Message carries sender fields and text for CommandSendMessage.
	Message Message
}
