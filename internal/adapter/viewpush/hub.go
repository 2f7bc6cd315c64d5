package viewpush

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/niksmo/elegance-storefront/internal/core/domain"
	"github.com/niksmo/elegance-storefront/internal/core/port"
)

var _ port.ViewPublisher = (*Hub)(nil)
var _ port.ViewStreamer = (*Hub)(nil)

// Encoder turns a view snapshot into the wire payload pushed to
// connected clients.
type Encoder interface {
	Encode(domain.ViewSnapshot) ([]byte, error)
}

// Hub fans recomputed view snapshots out to the websocket connections
// of each session. A session may hold several tabs, every tab gets the
// same push.
type Hub struct {
	mu       sync.Mutex
	conns    map[string]map[*conn]struct{}
	upgrader websocket.Upgrader
	encoder  Encoder
}

func NewHub(encoder Encoder) *Hub {
	if encoder == nil {
		panic("viewpush: nil encoder") // develop mistake
	}
	return &Hub{
		conns: make(map[string]map[*conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		encoder: encoder,
	}
}

// Publish pushes the snapshot to every connection of the session.
// Write failures close the connection, the client is expected to
// reconnect.
func (h *Hub) Publish(sessionID string, v domain.ViewSnapshot) {
	const op = "Hub.Publish"
	log := slog.With("op", op)

	data, err := h.encoder.Encode(v)
	if err != nil {
		log.Error("failed to encode snapshot", "err", err)
		return
	}

	for _, c := range h.sessionConns(sessionID) {
		if err := c.write(data); err != nil {
			log.Warn("failed to push snapshot", "err", err)
			h.remove(sessionID, c)
			_ = c.close()
		}
	}
}

// Stream upgrades the request, sends the initial snapshot and blocks
// reading until the client disconnects.
func (h *Hub) Stream(
	w http.ResponseWriter, r *http.Request,
	sessionID string, initial domain.ViewSnapshot,
) error {
	const op = "Hub.Stream"
	log := slog.With("op", op, "sessionID", sessionID)

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	c := newConn(ws)
	h.add(sessionID, c)
	defer func() {
		h.remove(sessionID, c)
		_ = c.close()
		log.Debug("client disconnected")
	}()

	log.Debug("client connected")

	data, err := h.encoder.Encode(initial)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.write(data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, set := range h.conns {
		for c := range set {
			_ = c.close()
		}
	}
	h.conns = make(map[string]map[*conn]struct{})
}

func (h *Hub) add(sessionID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[sessionID]
	if !ok {
		set = make(map[*conn]struct{})
		h.conns[sessionID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) remove(sessionID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[sessionID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, sessionID)
	}
}

func (h *Hub) sessionConns(sessionID string) []*conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	cs := make([]*conn, 0, len(h.conns[sessionID]))
	for c := range h.conns[sessionID] {
		cs = append(cs, c)
	}
	return cs
}
