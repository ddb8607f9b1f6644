package core

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// createRoom asks the hub for a fresh room on behalf of the client and
// returns its code.
func createRoom(t *testing.T, c *Client) string {
	t.Helper()

	c.Commands <- &Command{Kind: CommandCreateRoom}
	ev := mustEvent(t, c.Events, EventRoomCreated)
	if ev.Room == "" {
		t.Fatal("room created with empty code")
	}
	return ev.Room
}
