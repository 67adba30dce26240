package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust CORS as needed, e.g., check r.Header.Get("Origin")
	},
}

// SnapshotHub stores connected users (userId -> *websocket.Conn). Each user
// holds at most one connection; a reconnect replaces the previous one.
type SnapshotHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

var hub = &SnapshotHub{
	clients: make(map[string]*websocket.Conn),
	mutex:   sync.Mutex{},
}

// HandleStreamWebSocket registers a client for collection snapshot pushes.
// After every successful write the server re-reads the touched collection and
// pushes the full result down this socket, so the client never polls.
func HandleStreamWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade error", "error", err)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		conn.Close()
		return
	}

	hub.mutex.Lock()
	if previous, exists := hub.clients[userID]; exists {
		previous.Close()
	}
	hub.clients[userID] = conn
	hub.mutex.Unlock()
	zap.S().Debugw("user connected to stream", "userId", userID)

	conn.SetCloseHandler(func(code int, text string) error {
		hub.mutex.Lock()
		delete(hub.clients, userID)
		hub.mutex.Unlock()
		zap.S().Debugw("user disconnected from stream", "userId", userID)
		return nil
	})

	// Keep connection alive
	for {
		if _, _, err := conn.NextReader(); err != nil {
			conn.Close()
			break
		}
	}
}

// pushCollection re-reads a collection and pushes the result to its owner's
// stream. The re-read is skipped entirely when the owner has no connection.
func pushCollection(userID string, collection string, load func(ctx context.Context) (interface{}, error)) {
	hub.mutex.Lock()
	_, exists := hub.clients[userID]
	hub.mutex.Unlock()
	if !exists {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	data, err := load(ctx)
	if err != nil {
		zap.S().Errorw("failed to load collection for snapshot", "userId", userID, "collection", collection, "error", err)
		return
	}
	pushSnapshot(userID, collection, data)
}

// pushSnapshot sends the current contents of a collection to its owner's
// stream, if connected. Write handlers call this after every mutation.
func pushSnapshot(userID string, collection string, data interface{}) {
	hub.mutex.Lock()
	conn, exists := hub.clients[userID]
	hub.mutex.Unlock()

	if !exists {
		return
	}
	err := conn.WriteJSON(map[string]interface{}{
		"event":      "snapshot",
		"collection": collection,
		"data":       data,
	})
	if err != nil {
		zap.S().Errorw("error pushing snapshot", "userId", userID, "collection", collection, "error", err)
		hub.mutex.Lock()
		delete(hub.clients, userID)
		hub.mutex.Unlock()
		conn.Close()
	}
}
