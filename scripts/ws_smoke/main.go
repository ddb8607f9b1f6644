// Command ws_smoke exercises a running relay end to end: create a room,
// join it, send a message, and print what comes back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/rtcchat/relay/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:4000/ws", "WebSocket address")
	name := flag.String("name", "smoke", "display name to join with")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", typ, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", typ, err)
		}
		return nil
	}

	read := func(event string) (json.RawMessage, error) {
		for {
			var outbound proto.Outbound
			if err := wsjson.Read(ctx, conn, &outbound); err != nil {
				return nil, fmt.Errorf("read: %w", err)
			}
			if outbound.Error != nil {
				return nil, fmt.Errorf("server error: %s (%s)", outbound.Error.Msg, outbound.Error.Code)
			}
			if outbound.Event != event {
				fmt.Printf("skipping event=%s\n", outbound.Event)
				continue
			}
			return json.Marshal(outbound.Data)
		}
	}

	if err := send(proto.InboundTypeIdentity, proto.IdentityData{
		SenderID: "smoke-client",
		Protocol: proto.ProtocolVersion,
	}); err != nil {
		return err
	}

	if err := send(proto.InboundTypeCreate, struct{}{}); err != nil {
		return err
	}
	raw, err := read(proto.EventNameRoomCreated)
	if err != nil {
		return err
	}
	var created proto.EventRoomCreated
	if err := json.Unmarshal(raw, &created); err != nil {
		return fmt.Errorf("unmarshal room_created: %w", err)
	}
	fmt.Printf("room created: %s\n", created.Room)

	if err := send(proto.InboundTypeJoin, proto.JoinData{Room: created.Room, Name: *name}); err != nil {
		return err
	}
	if _, err := read(proto.EventNameJoined); err != nil {
		return err
	}
	fmt.Println("joined")

	if err := send(proto.InboundTypeMsg, proto.MsgData{Room: created.Room, Text: *text}); err != nil {
		return err
	}
	raw, err = read(proto.EventNameMessage)
	if err != nil {
		return err
	}
	var msg proto.EventMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}
	fmt.Printf("echo: room=%s sender=%s text=%q ts=%d\n", msg.Room, msg.Sender, msg.Text, msg.TS)
	return nil
}
