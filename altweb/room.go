package altweb

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Room fans frames out to every connected websocket client. All client
// bookkeeping happens on the Run goroutine, so the maps need no locking.
type Room struct {
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	clients    map[*client]bool
}

func NewRoom() *Room {
	return &Room{
		broadcast:  make(chan []byte),
		register:   make(chan *client),
		unregister: make(chan *client),
		clients:    make(map[*client]bool),
	}
}

// Forward queues a frame for delivery to all clients.
func (r *Room) Forward(msg []byte) {
	r.broadcast <- msg
}

// Run owns the client set. It never returns; start it on its own goroutine
// before serving connections.
func (r *Room) Run() {
	for {
		select {
		case c := <-r.register:
			r.clients[c] = true
			log.Printf("altweb: client connected (%d active)", len(r.clients))
		case c := <-r.unregister:
			if _, ok := r.clients[c]; ok {
				delete(r.clients, c)
				close(c.send)
			}
			log.Printf("altweb: client disconnected (%d active)", len(r.clients))
		case msg := <-r.broadcast:
			r.publish(msg)
		}
	}
}

// publish delivers one frame, dropping it for clients whose send buffer is
// full so a stalled reader cannot hold up the rest.
func (r *Room) publish(msg []byte) {
	for c := range r.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

const (
	socketBufferSize  = 1024
	messageBufferSize = 10
)

var upgrader = &websocket.Upgrader{ReadBufferSize: socketBufferSize, WriteBufferSize: socketBufferSize}

func (r *Room) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	socket, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("altweb: upgrade failed:", err)
		return
	}
	c := &client{
		socket: socket,
		send:   make(chan []byte, messageBufferSize),
		room:   r,
	}
	r.register <- c
	defer func() { r.unregister <- c }()
	go c.write()
	c.read()
}
