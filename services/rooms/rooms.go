// Package rooms owns the live room registry: create, capacity/password
// gated join, reconnect-safe rejoin, leave with auto-destroy and the
// lobby preview projection.
package rooms

import (
	"log"

	"Fabler/languages"
	"Fabler/models/game"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RejectionCode names the expected domain outcomes of a join attempt.
type RejectionCode string

const (
	RejectFull          RejectionCode = "full"
	RejectWrongPassword RejectionCode = "wrongPassword"
	RejectNotFound      RejectionCode = "notFound"
)

// Rejection is a domain outcome, not an error: callers branch on it and
// forward status+message to the client as a regular payload.
type Rejection struct {
	Code    RejectionCode      `json:"code"`
	Status  game.MessageStatus `json:"status"`
	Message string             `json:"message"`
}

func reject(code RejectionCode, messageKey string) *Rejection {
	return &Rejection{Code: code, Status: game.MsgError, Message: languages.T(messageKey)}
}

// Registry holds every live room. Composed once at startup; rooms live
// only for the process lifetime.
type Registry struct {
	rooms []*game.Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: []*game.Room{}}
}

// Create always succeeds; the owner becomes the first member. Private
// room passwords are stored bcrypt-hashed.
func (r *Registry) Create(owner *game.Session, name string, capacity int, password string, visibility game.RoomVisibility) *game.Room {
	room := &game.Room{
		ID:          uuid.NewString(),
		OwnerID:     owner.AccountID,
		Name:        name,
		Capacity:    capacity,
		CurrentSize: 1,
		Visibility:  visibility,
		Members: []game.RoomMember{
			{AccountID: owner.AccountID, ConnectionID: owner.ConnectionID},
		},
		Messages: []game.ChatMessage{},
		Game:     game.NewGameState(),
	}

	if visibility == game.RoomPrivate && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[ROOMS-ERROR] hashing password for room %s: %v", room.ID, err)
		} else {
			room.PasswordHash = string(hash)
		}
	}

	r.rooms = append(r.rooms, room)
	return room
}

// Join adds the session's account as a member. Capacity is checked before
// the password; the password is enforced only for private rooms.
func (r *Registry) Join(session *game.Session, roomID, password string) (*game.Room, *Rejection) {
	room := r.FindByID(roomID)
	if room == nil {
		return nil, reject(RejectNotFound, "room.error.notFound")
	}

	if room.CurrentSize >= room.Capacity {
		return nil, reject(RejectFull, "room.error.full")
	}

	if room.Visibility == game.RoomPrivate {
		if bcrypt.CompareHashAndPassword([]byte(room.PasswordHash), []byte(password)) != nil {
			return nil, reject(RejectWrongPassword, "room.error.wrongPassword")
		}
	}

	room.Members = append(room.Members, game.RoomMember{
		AccountID:    session.AccountID,
		ConnectionID: session.ConnectionID,
	})
	room.CurrentSize++
	return room, nil
}

// Rejoin swaps an existing member's connection id after a reconnect.
// Membership and CurrentSize never change here. Returns nil when the
// room is gone or the account is not a member.
func (r *Registry) Rejoin(accountID, roomID, newConnectionID string) *game.Room {
	room := r.FindByID(roomID)
	if room == nil {
		return nil
	}
	for i := range room.Members {
		if room.Members[i].AccountID == accountID {
			room.Members[i].ConnectionID = newConnectionID
			return room
		}
	}
	return nil
}

// Leave removes the member and destroys the room when it empties. The
// pre-deletion snapshot is returned either way so the caller can do a
// final broadcast.
func (r *Registry) Leave(accountID, roomID string) *game.Room {
	room := r.FindByID(roomID)
	if room == nil {
		return nil
	}

	members := room.Members[:0]
	for _, member := range room.Members {
		if member.AccountID != accountID {
			members = append(members, member)
		}
	}
	if len(members) == len(room.Members) {
		return room
	}
	room.Members = members
	room.CurrentSize--

	if room.CurrentSize <= 0 {
		kept := r.rooms[:0]
		for _, other := range r.rooms {
			if other.ID != roomID {
				kept = append(kept, other)
			}
		}
		r.rooms = kept
		log.Printf("[ROOMS] room %s emptied and destroyed", roomID)
	}

	return room
}

// FindByID returns the live room, or nil once it has been destroyed.
func (r *Registry) FindByID(roomID string) *game.Room {
	for _, room := range r.rooms {
		if room.ID == roomID {
			return room
		}
	}
	return nil
}

// FindByAccount returns the room the account is a member of, if any.
// The registries rely on the callers keeping an account in at most one
// room; the first hit wins.
func (r *Registry) FindByAccount(accountID string) *game.Room {
	for _, room := range r.rooms {
		for _, member := range room.Members {
			if member.AccountID == accountID {
				return room
			}
		}
	}
	return nil
}

// ToPreview strips the password hash, chat log and game state.
func (r *Registry) ToPreview(room *game.Room) game.PreviewRoom {
	return game.PreviewRoom{
		ID:          room.ID,
		OwnerID:     room.OwnerID,
		Name:        room.Name,
		Capacity:    room.Capacity,
		CurrentSize: room.CurrentSize,
		Visibility:  room.Visibility,
	}
}

// Previews projects every live room for the lobby listing.
func (r *Registry) Previews() []game.PreviewRoom {
	previews := make([]game.PreviewRoom, 0, len(r.rooms))
	for _, room := range r.rooms {
		previews = append(previews, r.ToPreview(room))
	}
	return previews
}
