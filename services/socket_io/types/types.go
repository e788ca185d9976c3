package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer wraps the socket.io server together with the map of live
// connections, keyed by account id. The map is what lets REST-side code
// and disconnect handling find a client's socket.
type SocketServer struct {
	Sio_server      *socket.Server
	UserConnections map[string]*socket.Socket
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(accountID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[accountID] = client
}

// RemoveConnection drops the map entry, but only when it still points at
// the given socket: after a fast reconnect the map already holds the new
// socket and the stale disconnect must not clobber it.
func (s *SocketServer) RemoveConnection(accountID string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if current, exists := s.UserConnections[accountID]; exists && current == client {
		delete(s.UserConnections, accountID)
	}
}

func (s *SocketServer) GetConnection(accountID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.UserConnections[accountID]
	return client, exists
}
