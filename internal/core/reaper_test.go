package core

import (
	"testing"
	"time"
)

func TestReaperDeletesIdleEmptyRoom(t *testing.T) {
	hub := startHub(t, Options{
		ReapInterval:  20 * time.Millisecond,
		InactivityTTL: 60 * time.Millisecond,
	})

	alice := NewClient("a")
	hub.RegisterClient(alice)

	code := createRoom(t, alice)
	alice.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "alice"}
	mustEvent(t, alice.Events, EventJoined)

	alice.Commands <- &Command{Kind: CommandLeaveRoom, Room: code}

	// Empty past the threshold: the next sweep must reclaim it.
	time.Sleep(300 * time.Millisecond)

	alice.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "alice"}
	ev := mustEvent(t, alice.Events, EventError)
	if ev.Error == nil || ev.Error.Code != ErrCodeRoomNotFound {
		t.Fatalf("expected reaped room to be gone, got %+v", ev)
	}
}

func TestReaperSparesOccupiedRoom(t *testing.T) {
	hub := startHub(t, Options{
		ReapInterval:  20 * time.Millisecond,
		InactivityTTL: 60 * time.Millisecond,
	})

	alice := NewClient("a")
	hub.RegisterClient(alice)

	code := createRoom(t, alice)
	alice.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "alice"}
	mustEvent(t, alice.Events, EventJoined)

	// Idle well past the threshold, but never empty.
	time.Sleep(300 * time.Millisecond)

	alice.Commands <- &Command{Kind: CommandSendMessage, Room: code, Message: Message{Text: "still alive"}}
	ev := mustEvent(t, alice.Events, EventRoomMessage)
	if ev.Message.Text != "still alive" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestReaperSparesRoomRejoinedBeforeThreshold(t *testing.T) {
	hub := startHub(t, Options{
		ReapInterval:  10 * time.Millisecond,
		InactivityTTL: 2 * time.Second,
	})

	alice := NewClient("a")
	hub.RegisterClient(alice)

	code := createRoom(t, alice)
	alice.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "alice"}
	mustEvent(t, alice.Events, EventJoined)
	alice.Commands <- &Command{Kind: CommandLeaveRoom, Room: code}

	// Several sweeps pass while the room is empty but inside the threshold.
	time.Sleep(100 * time.Millisecond)

	alice.Commands <- &Command{Kind: CommandJoinRoom, Room: code, Name: "alice"}
	joined := mustEvent(t, alice.Events, EventJoined)
	if joined.Room != code {
		t.Fatalf("expected to rejoin %q, got %+v", code, joined)
	}
}
