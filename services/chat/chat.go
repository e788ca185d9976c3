// Package chat keeps the per-room and lobby-wide message logs and turns
// dice commands into rendered rolls before a message is stored.
package chat

import (
	"strings"

	"Fabler/models/game"
	"Fabler/services/rooms"

	"github.com/google/uuid"
)

// Service appends messages to the owning room's log (or the process-wide
// lobby log) and hands the stored message back for broadcast.
type Service struct {
	rooms    *rooms.Registry
	lobbyLog []game.ChatMessage
}

func NewService(roomRegistry *rooms.Registry) *Service {
	return &Service{
		rooms:    roomRegistry,
		lobbyLog: []game.ChatMessage{},
	}
}

func newMessage(session *game.Session, text string) game.ChatMessage {
	trimmed := strings.TrimSpace(text)
	message := game.ChatMessage{
		ID:       uuid.NewString(),
		AuthorID: session.AccountID,
		Author:   session.DisplayName,
		Text:     trimmed,
	}
	if IsCommand(trimmed) {
		// The raw command is kept: the formula resolver's "last roll"
		// lookup identifies command messages by it.
		message.IsCommand = true
		message.RawCommand = trimmed
		message.Text = RollCommand(trimmed)
	}
	return message
}

// CreateRoomMessage stores a message on the room's chat log. Returns nil
// when the room no longer exists.
func (s *Service) CreateRoomMessage(session *game.Session, roomID, text string) *game.ChatMessage {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	message := newMessage(session, text)
	room.Messages = append(room.Messages, message)
	return &message
}

// RoomMessages returns the full chat log of a room.
func (s *Service) RoomMessages(roomID string) []game.ChatMessage {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	return room.Messages
}

// CreateLobbyMessage stores a message on the lobby-wide log.
func (s *Service) CreateLobbyMessage(session *game.Session, text string) game.ChatMessage {
	message := newMessage(session, text)
	s.lobbyLog = append(s.lobbyLog, message)
	return message
}

// LobbyMessages returns the lobby-wide chat log.
func (s *Service) LobbyMessages() []game.ChatMessage {
	return s.lobbyLog
}
