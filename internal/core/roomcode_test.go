package core

import (
	"strings"
	"testing"
	"time"
)

func TestNewRoomCodeFormat(t *testing.T) {
	for _, length := range []int{4, 5, 6, 8} {
		code, err := newRoomCode(length)
		if err != nil {
			t.Fatalf("newRoomCode(%d): %v", length, err)
		}
		if len(code) != length {
			t.Fatalf("code %q: want length %d, got %d", code, length, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune("0123456789ABCDEF", r) {
				t.Fatalf("code %q contains non-uppercase-hex rune %q", code, r)
			}
		}
	}
}

func TestNextRoomCodeSkipsLiveCodes(t *testing.T) {
	hub := NewHub(Options{CodeLength: 6}, nil)

	// Occupy a code and make sure generation never hands it out again while
	// the room is live.
	first, err := hub.nextRoomCode()
	if err != nil {
		t.Fatalf("nextRoomCode: %v", err)
	}
	hub.rooms[first] = NewRoom(first, time.Now())

	for i := 0; i < 100; i++ {
		code, err := hub.nextRoomCode()
		if err != nil {
			t.Fatalf("nextRoomCode: %v", err)
		}
		if code == first {
			t.Fatalf("generated code %q colliding with a live room", code)
		}
	}
}
