// Package battlefield owns a room's dummy templates and the live field
// instances, and executes authored actions: formula resolution against
// the initiator, then applying the signed result to the target's bar.
package battlefield

import (
	"log"
	"math"

	"Fabler/models/game"
	"Fabler/services/rooms"

	"github.com/google/uuid"
)

// Service mutates battlefield state in place on the authoritative room.
type Service struct {
	rooms *rooms.Registry
}

func NewService(roomRegistry *rooms.Registry) *Service {
	return &Service{rooms: roomRegistry}
}

// ActionResult is the slice of state an executed action may have touched,
// returned whole for the room broadcast.
type ActionResult struct {
	Characters   []*game.Character     `json:"characters"`
	MasterField  []*game.FieldInstance `json:"masterField"`
	PlayersField []*game.FieldInstance `json:"playersField"`
}

// CreateDummy adds a definition to the requested window.
func (s *Service) CreateDummy(roomID string, kind game.FieldKind, dummy *game.DummyDefinition) *game.DummyDefinition {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	if dummy.ID == "" {
		dummy.ID = uuid.NewString()
	}
	dummies := room.Game.Battlefield.Dummies(kind)
	*dummies = append(*dummies, dummy)
	return dummy
}

// UpdateDummy replaces a definition wholesale.
func (s *Service) UpdateDummy(roomID string, kind game.FieldKind, dummy *game.DummyDefinition) *game.DummyDefinition {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	dummies := room.Game.Battlefield.Dummies(kind)
	for i, existing := range *dummies {
		if existing.ID == dummy.ID {
			(*dummies)[i] = dummy
			return dummy
		}
	}
	return nil
}

// UpdateDummyField patches a single field of a definition: the name, or
// with subFieldID set, one barsMax maximum.
func (s *Service) UpdateDummyField(roomID string, kind game.FieldKind, dummyID, field string, value interface{}, subFieldID string) *game.DummyDefinition {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	var dummy *game.DummyDefinition
	for _, existing := range *room.Game.Battlefield.Dummies(kind) {
		if existing.ID == dummyID {
			dummy = existing
			break
		}
	}
	if dummy == nil {
		return nil
	}

	if subFieldID != "" {
		if field == "barsMax" {
			if bar := dummy.BarMax(subFieldID); bar != nil {
				bar.Max = toInt(value)
			}
		}
		return dummy
	}

	switch field {
	case "name":
		dummy.Name, _ = value.(string)
	case "avatar":
		dummy.Avatar, _ = value.(string)
	default:
		log.Printf("[BATTLEFIELD] ignoring unknown dummy field %q", field)
	}
	return dummy
}

// AddToField places an instance of a definition on the battlefield; the
// instance starts every bar at the definition's maximum.
func (s *Service) AddToField(roomID string, kind game.FieldKind, dummyID string) []*game.FieldInstance {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	var dummy *game.DummyDefinition
	for _, existing := range *room.Game.Battlefield.Dummies(kind) {
		if existing.ID == dummyID {
			dummy = existing
			break
		}
	}
	if dummy == nil {
		return nil
	}

	instance := &game.FieldInstance{
		InstanceID:   uuid.NewString(),
		DefinitionID: dummy.ID,
		BarsCurrent:  make([]game.DummyBarCurrent, 0, len(dummy.BarsMax)),
	}
	for _, bar := range dummy.BarsMax {
		instance.BarsCurrent = append(instance.BarsCurrent, game.DummyBarCurrent{
			SchemaID: bar.SchemaID,
			Value:    bar.Max,
		})
	}

	field := room.Game.Battlefield.Field(kind)
	*field = append(*field, instance)
	return *field
}

// PatchInstanceBar sets one live bar value on a placed instance.
func (s *Service) PatchInstanceBar(roomID string, kind game.FieldKind, instanceID, schemaID string, value int) []*game.FieldInstance {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	field := room.Game.Battlefield.Field(kind)
	for _, instance := range *field {
		if instance.InstanceID != instanceID {
			continue
		}
		if bar := instance.Bar(schemaID); bar != nil {
			bar.Value = value
		}
		break
	}
	return *field
}

// RemoveDummy deletes a definition together with all of its instances.
func (s *Service) RemoveDummy(roomID string, kind game.FieldKind, dummyID string) string {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return ""
	}
	dummies := room.Game.Battlefield.Dummies(kind)
	kept := (*dummies)[:0]
	for _, dummy := range *dummies {
		if dummy.ID != dummyID {
			kept = append(kept, dummy)
		}
	}
	*dummies = kept

	field := room.Game.Battlefield.Field(kind)
	keptField := (*field)[:0]
	for _, instance := range *field {
		if instance.DefinitionID != dummyID {
			keptField = append(keptField, instance)
		}
	}
	*field = keptField

	return dummyID
}

// RemoveFromField removes a single placed instance.
func (s *Service) RemoveFromField(roomID string, kind game.FieldKind, instanceID string) []*game.FieldInstance {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	field := room.Game.Battlefield.Field(kind)
	kept := (*field)[:0]
	for _, instance := range *field {
		if instance.InstanceID != instanceID {
			kept = append(kept, instance)
		}
	}
	*field = kept
	return *field
}

// RemoveAllFromField removes every instance of one definition.
func (s *Service) RemoveAllFromField(roomID string, kind game.FieldKind, dummyID string) []*game.FieldInstance {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	field := room.Game.Battlefield.Field(kind)
	kept := (*field)[:0]
	for _, instance := range *field {
		if instance.DefinitionID != dummyID {
			kept = append(kept, instance)
		}
	}
	*field = kept
	return *field
}

// MakeAction executes an action template: resolves the initiator, the
// target and the formula, then applies the signed result to the target's
// bar in place. Lookup misses shrink the action to a no-op rather than
// failing it; the updated slices are always returned for broadcast.
func (s *Service) MakeAction(roomID string, action game.ActionTemplate, targetID, initiatorID, initiatorAccountID string) *ActionResult {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}

	value := 0
	if initiator := s.findInitiator(room, initiatorID); initiator != nil {
		resolved := ResolveFormula(action.Target.Formula, initiator, &room.Game.Schema, room.Messages, initiatorAccountID)
		if !math.IsNaN(resolved) && !math.IsInf(resolved, 0) {
			value = int(resolved)
		}
	} else {
		log.Printf("[ACTION] initiator %s not found in room %s, applying zero", initiatorID, roomID)
	}

	s.applyToTarget(room, targetID, action.Target.BarSchemaID, value)

	return &ActionResult{
		Characters:   room.Game.Characters,
		MasterField:  room.Game.Battlefield.MasterField,
		PlayersField: room.Game.Battlefield.PlayersField,
	}
}

// findInitiator resolves an entity id to the acting variant: a character,
// or a placed dummy (master field searched before players field) paired
// with its definition.
func (s *Service) findInitiator(room *game.Room, id string) Initiator {
	for _, character := range room.Game.Characters {
		if character.ID == id {
			return CharacterInitiator{Character: character}
		}
	}

	for _, kind := range []game.FieldKind{game.FieldMaster, game.FieldPlayers} {
		for _, instance := range *room.Game.Battlefield.Field(kind) {
			if instance.InstanceID != id {
				continue
			}
			for _, dummy := range *room.Game.Battlefield.Dummies(kind) {
				if dummy.ID == instance.DefinitionID {
					return DummyInitiator{Definition: dummy, Instance: instance}
				}
			}
		}
	}
	return nil
}

// applyToTarget adds the signed value to the target's bar, whoever the
// target turns out to be. Unknown targets or bars are skipped silently.
func (s *Service) applyToTarget(room *game.Room, targetID, barSchemaID string, value int) {
	for _, character := range room.Game.Characters {
		if character.ID != targetID {
			continue
		}
		if bar := character.Bar(barSchemaID); bar != nil {
			bar.Current += value
		}
		return
	}

	for _, kind := range []game.FieldKind{game.FieldMaster, game.FieldPlayers} {
		for _, instance := range *room.Game.Battlefield.Field(kind) {
			if instance.InstanceID != targetID {
				continue
			}
			if bar := instance.Bar(barSchemaID); bar != nil {
				bar.Value += value
			}
			return
		}
	}
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
