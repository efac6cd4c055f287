package altweb

import "github.com/gorilla/websocket"

// client represents a single connected websocket consumer.
type client struct {
	socket *websocket.Conn
	send   chan []byte
	room   *Room
}

// read drains (and discards) inbound messages until the peer goes away, so
// the connection's control frames keep being processed.
func (c *client) read() {
	defer c.socket.Close()
	for {
		if _, _, err := c.socket.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) write() {
	defer c.socket.Close()
	for msg := range c.send {
		if err := c.socket.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
