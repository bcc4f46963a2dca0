package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4/internal/domain"
)

const writeWait = 10 * time.Second

// Client wraps one browser connection. gorilla connections allow a single
// concurrent writer, so every write goes through writeMu.
type Client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// SendMessage writes message as JSON. Writes after Close are dropped.
func (c *Client) SendMessage(message domain.ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return nil
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(message)
}

func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return websocket.ErrCloseSent
	}
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *Client) Close() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
