package realtime

import (
	"encoding/json"
	"sync"

	"child-wallet/internal/core/domain"

	"github.com/rs/zerolog"
)

// Hub fans committed wallet events out to the WebSocket clients watching
// each child. It implements ports.EventPublisher.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	log   zerolog.Logger
}

// NewHub creates a new Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		log:   log,
	}
}

// Register subscribes a client to its child's events.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.childID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[c.childID] = room
	}
	room[c] = struct{}{}
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.childID]
	if !ok {
		return
	}
	if _, ok := room[c]; ok {
		delete(room, c)
		close(c.send)
	}
	if len(room) == 0 {
		delete(h.rooms, c.childID)
	}
}

// Publish sends ev to every client subscribed to ev.ChildID. Slow clients
// whose buffer is full miss the event.
func (h *Hub) Publish(ev domain.WalletEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Str("event", ev.Type).Msg("realtime: marshal event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[ev.ChildID] {
		select {
		case c.send <- data:
		default:
			h.log.Warn().Str("child_id", ev.ChildID).Str("event", ev.Type).Msg("realtime: client buffer full, dropping event")
		}
	}
}

// ClientCount returns the number of clients watching childID.
func (h *Hub) ClientCount(childID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[childID])
}
