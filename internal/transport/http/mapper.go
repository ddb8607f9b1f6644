package http

import (
	"encoding/json"

	"github.com/rtcchat/relay/internal/core"
	"github.com/rtcchat/relay/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeIdentity:
		var identity proto.IdentityData
		if err := json.Unmarshal(inbound.Data, &identity); err != nil {
			return nil, nil, err
		}
		if identity.SenderID == "" {
			return nil, &proto.Error{Code: core.ErrCodeInvalidInput, Msg: "sender_id is required"}, nil
		}
		if identity.Protocol != 0 && identity.Protocol != proto.ProtocolVersion {
			return nil, &proto.Error{Code: core.ErrCodeInvalidInput, Msg: "unsupported protocol version"}, nil
		}
		return &core.Command{
			Kind:     core.CommandSetIdentity,
			SenderID: identity.SenderID,
		}, nil, nil
	case proto.InboundTypeCreate:
		return &core.Command{Kind: core.CommandCreateRoom}, nil, nil
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		if join.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeInvalidInput, Msg: "room is required"}, nil
		}
		if join.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeInvalidInput, Msg: "name is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandJoinRoom,
			Room: join.Room,
			Name: join.Name,
		}, nil, nil
	case proto.InboundTypeLeave:
		var leave proto.LeaveData
		if err := json.Unmarshal(inbound.Data, &leave); err != nil {
			return nil, nil, err
		}
		if leave.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeInvalidInput, Msg: "room is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandLeaveRoom,
			Room: leave.Room,
		}, nil, nil
	case proto.InboundTypeMsg:
		var msg proto.MsgData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		if msg.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeInvalidInput, Msg: "room is required"}, nil
		}
		return &core.Command{
			Kind: core.CommandSendMessage,
			Room: msg.Room,
			Message: core.Message{
				// ID and CreatedAt are assigned by the hub.
				Room:       msg.Room,
				SenderID:   msg.SenderID,
				SenderName: msg.SenderName,
				Text:       msg.Text,
			},
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func eventMessage(msg core.Message) proto.EventMessage {
	return proto.EventMessage{
		ID:       msg.ID,
		Room:     msg.Room,
		SenderID: msg.SenderID,
		Sender:   msg.SenderName,
		Text:     msg.Text,
		TS:       msg.CreatedAt.Unix(),
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameRoomCreated,
			Data:  proto.EventRoomCreated{Room: event.Room},
		}
	case core.EventJoined:
		messages := make([]proto.EventMessage, 0, len(event.History))
		for _, msg := range event.History {
			messages = append(messages, eventMessage(msg))
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameJoined,
			Data: proto.EventJoined{
				Room:     event.Room,
				Messages: messages,
			},
		}
	case core.EventRoomMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessage,
			Data:  eventMessage(event.Message),
		}
	case core.EventUserJoined:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameUserJoined,
			Data: proto.EventPresence{
				Room:  event.Room,
				User:  event.User,
				Count: event.Count,
			},
		}
	case core.EventUserLeft:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameUserLeft,
			Data: proto.EventPresence{
				Room:  event.Room,
				User:  event.User,
				Count: event.Count,
			},
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}
