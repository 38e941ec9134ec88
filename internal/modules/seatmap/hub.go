package seatmap

import (
	"sync"

	"github.com/gorilla/websocket"
)

// SeatEvent is pushed to every watcher of an expedition whenever a seat
// changes state.
type SeatEvent struct {
	ExpeditionID int64  `json:"expedition_id"`
	SeatNo       int    `json:"seat_no"`
	Status       string `json:"status"`
}

// Hub keeps the live seat-map connections, grouped per expedition.
type Hub struct {
	watchers map[int64]map[*websocket.Conn]bool
	mutex    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		watchers: make(map[int64]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(expeditionID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.watchers[expeditionID] == nil {
		h.watchers[expeditionID] = make(map[*websocket.Conn]bool)
	}
	h.watchers[expeditionID][conn] = true
}

func (h *Hub) Unregister(expeditionID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conns, exists := h.watchers[expeditionID]; exists {
		if conns[conn] {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(h.watchers, expeditionID)
		}
	}
}

// Broadcast sends the event to every watcher of its expedition. Dead
// connections are dropped on write failure.
func (h *Hub) Broadcast(event SeatEvent) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.watchers[event.ExpeditionID]))
	for conn := range h.watchers[event.ExpeditionID] {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(event.ExpeditionID, conn)
		}
	}
}

// PublishSeatReserved lets the purchase flow notify watchers without
// knowing about websockets.
func (h *Hub) PublishSeatReserved(expeditionID int64, seatNo int) {
	h.Broadcast(SeatEvent{ExpeditionID: expeditionID, SeatNo: seatNo, Status: "RESERVED"})
}

func (h *Hub) WatcherCount(expeditionID int64) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.watchers[expeditionID])
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for expeditionID, conns := range h.watchers {
		for conn := range conns {
			_ = conn.Close()
		}
		delete(h.watchers, expeditionID)
	}
}
