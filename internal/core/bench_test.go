package core

import (
	"context"
	"fmt"
	"testing"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(Options{}, nil)
	go hub.Run(ctx)

	sender := NewClient("sender")
	hub.RegisterClient(sender)
	sender.Commands <- &Command{Kind: CommandCreateRoom}
	created := <-sender.Events
	code := created.Room
	sender.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "sender"}

	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		c := NewClient(fmt.Sprintf("c%d", i))
		hub.RegisterClient(c)
		c.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "client"}
		clients = append(clients, c)
	}

	// Drain events for all but the first recipient to avoid channel backpressure.
	target := clients[0]
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}
	go func() {
		for range sender.Events {
		}
	}()

	// Warm-up send; once it comes back the room is wired up for the target.
	sender.Commands <- &Command{Kind: CommandSendMessage, Room: code, Message: Message{Text: "warmup"}}
	for ev := range target.Events {
		if ev.Kind == EventRoomMessage {
			break
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sender.Commands <- &Command{
			Kind:    CommandSendMessage,
			Room:    code,
			Message: Message{Text: "payload"},
		}
		for ev := range target.Events {
			if ev.Kind == EventRoomMessage {
				break
			}
		}
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
