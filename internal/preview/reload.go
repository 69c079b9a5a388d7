// Package preview provides live-reload plumbing for the tagtree preview
// server: a websocket hub that pushes reload notices to open browser tabs,
// and a polling watcher that detects edits to the document definition.
package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageType represents the type of reload message.
type MessageType string

const (
	TypeReload MessageType = "reload"
	TypeError  MessageType = "error"
	TypeClear  MessageType = "clear"
)

// Message is sent to browsers via WebSocket.
type Message struct {
	Type  MessageType `json:"type"`
	Error string      `json:"error,omitempty"`
}

// ReloadServer manages WebSocket connections for live reload.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewReloadServer creates a new reload server.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview runs locally
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (s *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Keep connection alive until the client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// NotifyReload tells all clients to reload the page.
func (s *ReloadServer) NotifyReload() {
	s.broadcast(Message{Type: TypeReload})
}

// NotifyError shows an error overlay on all clients.
func (s *ReloadServer) NotifyError(errMsg string) {
	s.broadcast(Message{Type: TypeError, Error: errMsg})
}

// ClearError clears the error overlay on all clients.
func (s *ReloadServer) ClearError() {
	s.broadcast(Message{Type: TypeClear})
}

// broadcast sends a message to all connected clients.
func (s *ReloadServer) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			s.mu.Lock()
			delete(s.clients, client)
			s.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *ReloadServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
