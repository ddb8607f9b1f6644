package core

import (
	"testing"
	"time"
)

func TestRoomMembershipSet(t *testing.T) {
	room := NewRoom("AB12CD", time.Now())
	a := NewClient("a")
	b := NewClient("b")

	if !room.AddClient(a) {
		t.Fatal("first add should report newly added")
	}
	if room.AddClient(a) {
		t.Fatal("second add of same client should be a no-op")
	}
	room.AddClient(b)

	if room.MemberCount() != 2 {
		t.Fatalf("expected 2 members, got %d", room.MemberCount())
	}
	if !room.RemoveClient(a) {
		t.Fatal("remove of member should succeed")
	}
	if room.RemoveClient(a) {
		t.Fatal("remove of non-member should be a no-op")
	}
	if room.Empty() {
		t.Fatal("room with one member reported empty")
	}
	room.RemoveClient(b)
	if !room.Empty() {
		t.Fatal("emptied room not reported empty")
	}
}

func TestRoomHistorySnapshotIsStable(t *testing.T) {
	room := NewRoom("AB12CD", time.Now())
	room.Append(Message{ID: "1", Text: "first"})

	snapshot := room.History()
	room.Append(Message{ID: "2", Text: "second"})

	if len(snapshot) != 1 || snapshot[0].Text != "first" {
		t.Fatalf("snapshot mutated by later append: %+v", snapshot)
	}
	if got := room.History(); len(got) != 2 {
		t.Fatalf("expected 2 messages in history, got %d", len(got))
	}
}

func TestRoomIdleSince(t *testing.T) {
	start := time.Now()
	room := NewRoom("AB12CD", start)

	later := start.Add(90 * time.Minute)
	if idle := room.IdleSince(later); idle != 90*time.Minute {
		t.Fatalf("unexpected idle duration: %v", idle)
	}

	room.Touch(later)
	if idle := room.IdleSince(later); idle != 0 {
		t.Fatalf("touch did not reset activity: %v", idle)
	}
}
