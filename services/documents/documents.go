// Package documents is the room-scoped CRUD over shared text documents.
package documents

import (
	"Fabler/models/game"
	"Fabler/services/rooms"

	"github.com/google/uuid"
)

type Service struct {
	rooms *rooms.Registry
}

func NewService(roomRegistry *rooms.Registry) *Service {
	return &Service{rooms: roomRegistry}
}

// Create adds an empty document with the given title and description.
func (s *Service) Create(roomID, title, description string) *game.Doc {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	doc := &game.Doc{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
	room.Game.Documents = append(room.Game.Documents, doc)
	return doc
}

// UpdateField patches one field of a document.
func (s *Service) UpdateField(roomID, docID, field, value string) *game.Doc {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	for _, doc := range room.Game.Documents {
		if doc.ID != docID {
			continue
		}
		switch field {
		case "title":
			doc.Title = value
		case "description":
			doc.Description = value
		case "content":
			doc.Content = value
		}
		return doc
	}
	return nil
}

// Remove deletes a document, returning the removed id.
func (s *Service) Remove(roomID, docID string) string {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return ""
	}
	kept := room.Game.Documents[:0]
	for _, doc := range room.Game.Documents {
		if doc.ID != docID {
			kept = append(kept, doc)
		}
	}
	room.Game.Documents = kept
	return docID
}
