// Package settings maintains a room's character schema (bars, specials,
// effects). Schema updates are merges, not replaces: records whose
// schema id survives are kept with their values, new ids are synthesized
// with defaults, removed ids are dropped from every character and dummy
// definition in the room.
package settings

import (
	game_constants "Fabler/constants/game"
	"Fabler/models/game"
	"Fabler/services/rooms"
)

type Service struct {
	rooms *rooms.Registry
}

func NewService(roomRegistry *rooms.Registry) *Service {
	return &Service{rooms: roomRegistry}
}

// BarsResult carries every collection a bar-schema update may touch.
type BarsResult struct {
	Bars           []game.BarSchema        `json:"bars"`
	Characters     []*game.Character       `json:"characters"`
	MasterDummies  []*game.DummyDefinition `json:"masterDummies"`
	PlayersDummies []*game.DummyDefinition `json:"playersDummies"`
}

// UpdateBars replaces the bar schema and re-syncs every character and
// dummy definition to it, ordered like the new schema.
func (s *Service) UpdateBars(roomID string, bars []game.BarSchema) *BarsResult {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	room.Game.Schema.Bars = bars

	for _, character := range room.Game.Characters {
		merged := make([]game.CharacterBar, 0, len(bars))
		for _, schema := range bars {
			if existing := character.Bar(schema.ID); existing != nil {
				merged = append(merged, *existing)
			} else {
				merged = append(merged, game.CharacterBar{
					SchemaID: schema.ID,
					Current:  game_constants.DefaultBarCurrent,
					Max:      game_constants.DefaultBarMax,
				})
			}
		}
		character.Bars = merged
	}

	for _, kind := range []game.FieldKind{game.FieldMaster, game.FieldPlayers} {
		for _, dummy := range *room.Game.Battlefield.Dummies(kind) {
			merged := make([]game.DummyBarMax, 0, len(bars))
			for _, schema := range bars {
				if existing := dummy.BarMax(schema.ID); existing != nil {
					merged = append(merged, *existing)
				} else {
					merged = append(merged, game.DummyBarMax{
						SchemaID: schema.ID,
						Max:      game_constants.DefaultBarMax,
						Include:  game_constants.DefaultDummyBarInclude,
					})
				}
			}
			dummy.BarsMax = merged
		}
	}

	return &BarsResult{
		Bars:           room.Game.Schema.Bars,
		Characters:     room.Game.Characters,
		MasterDummies:  room.Game.Battlefield.MasterDummies,
		PlayersDummies: room.Game.Battlefield.PlayersDummies,
	}
}

// SpecialsResult carries the collections a special-schema update touches.
type SpecialsResult struct {
	Specials   []game.SpecialSchema `json:"specials"`
	Characters []*game.Character    `json:"characters"`
}

// UpdateSpecials replaces the special schema and re-syncs characters.
// Dummies have no specials, so only characters are touched.
func (s *Service) UpdateSpecials(roomID string, specials []game.SpecialSchema) *SpecialsResult {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	room.Game.Schema.Specials = specials

	for _, character := range room.Game.Characters {
		merged := make([]game.CharacterSpecial, 0, len(specials))
		for _, schema := range specials {
			if existing := character.Special(schema.ID); existing != nil {
				merged = append(merged, *existing)
			} else {
				merged = append(merged, game.CharacterSpecial{
					SchemaID: schema.ID,
					Current:  game_constants.DefaultSpecialCurrent,
				})
			}
		}
		character.Specials = merged
	}

	return &SpecialsResult{
		Specials:   room.Game.Schema.Specials,
		Characters: room.Game.Characters,
	}
}

// EffectsResult carries the collections an effect-schema update touches.
type EffectsResult struct {
	Effects    []game.EffectSchema `json:"effects"`
	Characters []*game.Character   `json:"characters"`
}

// UpdateEffects replaces the effect schema. Characters only reference
// effects they already carry, so the merge keeps surviving ids and drops
// the rest — nothing is synthesized.
func (s *Service) UpdateEffects(roomID string, effects []game.EffectSchema) *EffectsResult {
	room := s.rooms.FindByID(roomID)
	if room == nil {
		return nil
	}
	room.Game.Schema.Effects = effects

	for _, character := range room.Game.Characters {
		kept := make([]string, 0, len(character.Effects))
		for _, schema := range effects {
			for _, effectID := range character.Effects {
				if effectID == schema.ID {
					kept = append(kept, effectID)
					break
				}
			}
		}
		character.Effects = kept
	}

	return &EffectsResult{
		Effects:    room.Game.Schema.Effects,
		Characters: room.Game.Characters,
	}
}
