package viewpush

import (
	"sync"

	"github.com/gorilla/websocket"
)

// conn wraps a websocket connection with a write mutex so snapshot
// pushes from different goroutines never interleave.
type conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

func newConn(ws *websocket.Conn) *conn {
	return &conn{ws: ws}
}

func (c *conn) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (c *conn) close() error {
	c.writeMu.Lock()
	c.closed = true
	c.writeMu.Unlock()
	return c.ws.Close()
}
