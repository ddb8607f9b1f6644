// Package proto defines the JSON envelopes crossing the event channel
// between clients and the relay. It says nothing about state; mapping to
// core commands and events lives in the transport layer.
package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	InboundTypeIdentity = "identity"
	InboundTypeCreate   = "create"
	InboundTypeJoin     = "join"
	InboundTypeLeave    = "leave"
	InboundTypeMsg      = "msg"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNameRoomCreated = "room_created"
	EventNameJoined      = "joined"
	EventNameMessage     = "message"
	EventNameUserJoined  = "user_joined"
	EventNameUserLeft    = "user_left"
)

// IdentityData associates the connection with a stable, client-chosen
// sender id. The id is not validated. Protocol, when set, must match
// ProtocolVersion; zero means "unspecified" for older clients.
type IdentityData struct {
	SenderID string `json:"sender_id"`
	Protocol int    `json:"protocol,omitempty"`
}

// JoinData requests to join a room by code, announcing a display name.
type JoinData struct {
	Room string `json:"room"`
	Name string `json:"name"`
}

// LeaveData requests to leave a room.
type LeaveData struct {
	Room string `json:"room"`
}

// MsgData is a chat message from the client.
type MsgData struct {
	Room       string `json:"room"`
	Text       string `json:"text"`
	SenderID   string `json:"sender_id,omitempty"`
	SenderName string `json:"sender_name,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventRoomCreated confirms room creation to the requester.
type EventRoomCreated struct {
	Room string `json:"room"`
}

// EventJoined delivers the room's full history to a joiner.
type EventJoined struct {
	Room     string         `json:"room"`
	Messages []EventMessage `json:"messages"`
}

// EventMessage is one relayed chat message.
type EventMessage struct {
	ID       string `json:"id"`
	Room     string `json:"room"`
	SenderID string `json:"sender_id,omitempty"`
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	TS       int64  `json:"ts"`
}

// EventPresence is a member-count update after a join or leave.
type EventPresence struct {
	Room  string `json:"room"`
	User  string `json:"user,omitempty"`
	Count int    `json:"count"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
