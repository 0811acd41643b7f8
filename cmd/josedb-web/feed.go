package main

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// changeFeed fans a string message out to every currently connected
// websocket client, dropping a client that can't keep up rather than
// blocking the broadcaster.
type changeFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan string
}

func newChangeFeed() *changeFeed {
	return &changeFeed{clients: make(map[*websocket.Conn]chan string)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (f *changeFeed) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	ch := make(chan string, 8)
	f.mu.Lock()
	f.clients[conn] = ch
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.clients, conn)
		f.mu.Unlock()
		conn.Close()
	}()

	for msg := range ch {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			return
		}
	}
}

func (f *changeFeed) broadcast(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn, ch := range f.clients {
		select {
		case ch <- message:
		default:
			delete(f.clients, conn)
			conn.Close()
		}
	}
}
