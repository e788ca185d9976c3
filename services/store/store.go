// Package store composes the process-wide registries and services once
// at startup. Everything that used to be a hidden module-level singleton
// lives here and is injected where needed.
package store

import (
	"sync"

	"Fabler/services/accounts"
	"Fabler/services/battlefield"
	"Fabler/services/characters"
	"Fabler/services/chat"
	"Fabler/services/documents"
	"Fabler/services/presence"
	"Fabler/services/rooms"
	"Fabler/services/settings"

	"gorm.io/gorm"
)

// Store is the single authoritative owner of the in-memory lobby state.
//
// The registries assume events run one at a time; socket.io dispatches
// handlers on their own goroutines, so every event handler takes the
// store lock for its full duration. That serializes all mutation of room
// and presence state the same way a single-threaded event loop would.
// Handlers must finish their mutation before doing any emit-and-wait
// style I/O while holding the lock.
type Store struct {
	sync.Mutex

	Accounts    accounts.Store
	Presence    *presence.Registry
	Rooms       *rooms.Registry
	Chat        *chat.Service
	Characters  *characters.Service
	Settings    *settings.Service
	Battlefield *battlefield.Service
	Documents   *documents.Service
}

// New wires every service against the shared room registry and the
// account store adapter.
func New(db *gorm.DB) *Store {
	roomRegistry := rooms.NewRegistry()
	return &Store{
		Accounts:    accounts.NewGormStore(db),
		Presence:    presence.NewRegistry(),
		Rooms:       roomRegistry,
		Chat:        chat.NewService(roomRegistry),
		Characters:  characters.NewService(roomRegistry),
		Settings:    settings.NewService(roomRegistry),
		Battlefield: battlefield.NewService(roomRegistry),
		Documents:   documents.NewService(roomRegistry),
	}
}
