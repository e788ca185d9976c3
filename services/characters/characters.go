// Package characters is the room-scoped CRUD over player characters.
package characters

import (
	"log"

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

// Create adds a character to the room.
func (s *Service) Create(roomID string, character *game.Character) *game.Character {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	if character.ID == "" {
		character.ID = uuid.NewString()
	}
	room.Game.Characters = append(room.Game.Characters, character)
	return character
}

// Update replaces a character wholesale.
func (s *Service) Update(roomID string, character *game.Character) *game.Character {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	for i, existing := range room.Game.Characters {
		if existing.ID == character.ID {
			room.Game.Characters[i] = character
			return character
		}
	}
	return nil
}

// UpdateField patches a single character field. With subFieldID set the
// field names a bar or special record and value is its new current.
// Effects toggle: an effect id already present is removed, a new one is
// added.
func (s *Service) UpdateField(roomID, characterID, field string, value interface{}, subFieldID string) *game.Character {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	var character *game.Character
	for _, existing := range room.Game.Characters {
		if existing.ID == characterID {
			character = existing
			break
		}
	}
	if character == nil {
		return nil
	}

	if field == "effects" {
		effectID, _ := value.(string)
		for i, existing := range character.Effects {
			if existing == effectID {
				character.Effects = append(character.Effects[:i], character.Effects[i+1:]...)
				return character
			}
		}
		character.Effects = append(character.Effects, effectID)
		return character
	}

	if subFieldID != "" {
		switch field {
		case "bars":
			if bar := character.Bar(subFieldID); bar != nil {
				bar.Current = toInt(value)
			}
		case "specials":
			if special := character.Special(subFieldID); special != nil {
				special.Current = toInt(value)
			}
		}
		return character
	}

	switch field {
	case "name":
		character.Name, _ = value.(string)
	case "description":
		character.Description, _ = value.(string)
	case "avatar":
		character.Avatar, _ = value.(string)
	case "level":
		character.Level = toInt(value)
	default:
		log.Printf("[CHARACTERS] ignoring unknown field %q", field)
	}
	return character
}

// Remove deletes a character, returning the removed id.
func (s *Service) Remove(roomID, characterID string) string {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return ""
	}
	kept := room.Game.Characters[:0]
	for _, character := range room.Game.Characters {
		if character.ID != characterID {
			kept = append(kept, character)
		}
	}
	room.Game.Characters = kept
	return characterID
}

func toInt(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
