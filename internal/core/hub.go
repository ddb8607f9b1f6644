package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rtcchat/relay/internal/metrics"
)

// Options tune room lifecycle behavior.
type Options struct {
	// CodeLength is the number of uppercase hex characters in a room code.
	// Code entropy is the only access control on a room.
	CodeLength int
	// RoomCapacity caps members per room. Zero means unlimited.
	RoomCapacity int
	// ReapInterval is how often the reaper sweeps.
	ReapInterval time.Duration
	// InactivityTTL is how long an empty room may stay idle before the
	// reaper deletes it.
	InactivityTTL time.Duration
}

// DefaultOptions mirror the production defaults.
func DefaultOptions() Options {
	return Options{
		CodeLength:    6,
		RoomCapacity:  0,
		ReapInterval:  time.Minute,
		InactivityTTL: time.Hour,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.CodeLength <= 0 {
		o.CodeLength = def.CodeLength
	}
	if o.ReapInterval <= 0 {
		o.ReapInterval = def.ReapInterval
	}
	if o.InactivityTTL <= 0 {
		o.InactivityTTL = def.InactivityTTL
	}
	return o
}

// Stats is a point-in-time view of hub occupancy.
type Stats struct {
	Rooms   int `json:"rooms"`
	Clients int `json:"clients"`
}

type envelope struct {
	client *Client
	cmd    *Command
}

// Hub owns the room registry, membership, and message routing. All shared
// state is confined to the Run goroutine: registrations, client commands,
// and the reaper tick are funneled into one loop, so no mutation ever
// observes a half-updated member set.
type Hub struct {
	opts Options
	log  zerolog.Logger

	rooms   map[string]*Room
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	inbox      chan envelope
	statsReq   chan chan Stats
	done       chan struct{}
}

// NewHub creates a hub with the given options. A nil logger disables logging.
func NewHub(opts Options, logger *zerolog.Logger) *Hub {
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Hub{
		opts:       opts.withDefaults(),
		log:        lg,
		rooms:      make(map[string]*Room),
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbox:      make(chan envelope),
		statsReq:   make(chan chan Stats),
		done:       make(chan struct{}),
	}
}

// RegisterClient hands a new connection to the hub. No-op after the hub
// has stopped.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient removes a connection. Safe to call while commands from
// the same connection are still in flight; they are dropped once the client
// is gone.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Stats reports current room and client counts via the hub loop.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	select {
	case h.statsReq <- reply:
	case <-h.done:
		return Stats{}, context.Canceled
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// Run processes hub traffic until the context is canceled. It must be
// running before clients are registered.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.opts.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.addClient(ctx, c)
		case c := <-h.unregister:
			h.dropClient(c)
		case env := <-h.inbox:
			h.dispatch(env.client, env.cmd)
		case <-ticker.C:
			h.reap(time.Now())
		case reply := <-h.statsReq:
			reply <- Stats{Rooms: len(h.rooms), Clients: len(h.clients)}
		}
	}
}

func (h *Hub) addClient(ctx context.Context, c *Client) {
	if _, exists := h.clients[c]; exists {
		return
	}
	h.clients[c] = struct{}{}
	metrics.ClientsConnected.Inc()
	h.log.Debug().Str("client_id", c.ID).Msg("client registered")

	// Pump commands into the shared inbox so the loop above stays the single
	// writer. The pump exits when the client unregisters or the hub stops.
	go func() {
		for {
			select {
			case cmd := <-c.Commands:
				select {
				case h.inbox <- envelope{client: c, cmd: cmd}:
				case <-c.done:
					return
				case <-ctx.Done():
					return
				}
			case <-c.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) dropClient(c *Client) {
	if _, exists := h.clients[c]; !exists {
		return
	}
	delete(h.clients, c)
	metrics.ClientsConnected.Dec()

	for code := range c.Rooms {
		room, ok := h.rooms[code]
		if !ok {
			continue
		}
		if room.RemoveClient(c) {
			room.Broadcast(&Event{
				Kind:  EventUserLeft,
				Room:  code,
				User:  c.Name,
				Count: room.MemberCount(),
			})
			h.log.Debug().Str("room", code).Int("members", room.MemberCount()).Msg("member disconnected")
		}
	}

	close(c.done)
	close(c.Events)
}

// dispatch routes one client command. Commands from clients that already
// unregistered are silently dropped.
func (h *Hub) dispatch(c *Client, cmd *Command) {
	if _, exists := h.clients[c]; !exists {
		return
	}
	if cmd == nil {
		return
	}

	switch cmd.Kind {
	case CommandSetIdentity:
		h.setIdentity(c, cmd)
	case CommandCreateRoom:
		h.createRoom(c)
	case CommandJoinRoom:
		h.joinRoom(c, cmd)
	case CommandLeaveRoom:
		h.leaveRoom(c, cmd.Room)
	case CommandSendMessage:
		h.routeMessage(c, cmd)
	default:
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeInvalidInput, "unknown command")})
	}
}

func (h *Hub) setIdentity(c *Client, cmd *Command) {
	if cmd.SenderID == "" {
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeInvalidInput, "sender id is required")})
		return
	}
	c.SenderID = cmd.SenderID
}

func (h *Hub) createRoom(c *Client) {
	code, err := h.nextRoomCode()
	if err != nil {
		// Fatal only to this operation; the hub and every other room keep
		// going.
		h.log.Error().Err(err).Msg("room code generation failed")
		c.send(&Event{Kind: EventError, Error: coreError(ErrCodeInternal, "could not create room")})
		return
	}

	h.rooms[code] = NewRoom(code, time.Now())
	metrics.RoomsActive.Inc()
	metrics.RoomsCreated.Inc()
	h.log.Info().Str("room", code).Msg("room created")

	c.send(&Event{Kind: EventRoomCreated, Room: code})
}

func (h *Hub) joinRoom(c *Client, cmd *Command) {
	room, ok := h.rooms[cmd.Room]
	if !ok {
		c.send(&Event{Kind: EventError, Room: cmd.Room, Error: coreError(ErrCodeRoomNotFound, "room not found")})
		return
	}
	if h.opts.RoomCapacity > 0 && !room.Has(c) && room.MemberCount() >= h.opts.RoomCapacity {
		c.send(&Event{Kind: EventError, Room: cmd.Room, Error: coreError(ErrCodeRoomFull, "room is full")})
		return
	}

	if cmd.Name != "" {
		c.Name = cmd.Name
	}

	// Rejoining is a no-op for the member set; the joiner still gets a fresh
	// history snapshot and everyone gets the current count.
	room.AddClient(c)
	c.Rooms[cmd.Room] = struct{}{}
	room.Touch(time.Now())

	c.send(&Event{Kind: EventJoined, Room: cmd.Room, History: room.History()})
	room.Broadcast(&Event{
		Kind:  EventUserJoined,
		Room:  cmd.Room,
		User:  c.Name,
		Count: room.MemberCount(),
	})
	h.log.Debug().Str("room", cmd.Room).Str("user", c.Name).Int("members", room.MemberCount()).Msg("member joined")
}

func (h *Hub) leaveRoom(c *Client, code string) {
	room, ok := h.rooms[code]
	if !ok {
		c.send(&Event{Kind: EventError, Room: code, Error: coreError(ErrCodeRoomNotFound, "room not found")})
		return
	}
	delete(c.Rooms, code)
	if !room.RemoveClient(c) {
		return
	}

	room.Broadcast(&Event{
		Kind:  EventUserLeft,
		Room:  code,
		User:  c.Name,
		Count: room.MemberCount(),
	})
	h.log.Debug().Str("room", code).Str("user", c.Name).Int("members", room.MemberCount()).Msg("member left")
}

func (h *Hub) routeMessage(c *Client, cmd *Command) {
	room, ok := h.rooms[cmd.Room]
	if !ok {
		// Reported to the sender only, no broadcast.
		c.send(&Event{Kind: EventError, Room: cmd.Room, Error: coreError(ErrCodeRoomNotFound, "room not found")})
		return
	}

	senderID := cmd.Message.SenderID
	if senderID == "" {
		senderID = c.SenderID
	}
	senderName := cmd.Message.SenderName
	if senderName == "" {
		senderName = c.Name
	}

	msg := Message{
		ID:         uuid.NewString(),
		Room:       cmd.Room,
		SenderID:   senderID,
		SenderName: senderName,
		Text:       cmd.Message.Text,
		CreatedAt:  time.Now(),
	}

	room.Append(msg)
	room.Touch(msg.CreatedAt)
	metrics.MessagesRelayed.Inc()

	room.Broadcast(&Event{Kind: EventRoomMessage, Room: cmd.Room, Message: msg})
}

// reap deletes rooms that have been empty past the inactivity threshold.
// This is the sole reclamation path for emptied rooms.
func (h *Hub) reap(now time.Time) {
	for code, room := range h.rooms {
		if room.Empty() && room.IdleSince(now) > h.opts.InactivityTTL {
			delete(h.rooms, code)
			metrics.RoomsActive.Dec()
			metrics.RoomsReaped.Inc()
			h.log.Info().Str("room", code).Msg("reaped inactive room")
		}
	}
}

func (h *Hub) shutdown() {
	close(h.done)
	for c := range h.clients {
		close(c.done)
		close(c.Events)
		metrics.ClientsConnected.Dec()
	}
	h.clients = make(map[*Client]struct{})
	metrics.RoomsActive.Sub(float64(len(h.rooms)))
	h.log.Info().Int("rooms", len(h.rooms)).Msg("hub stopped")
}
