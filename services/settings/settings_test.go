package settings

import (
	"testing"

	"Fabler/models/game"
	"Fabler/services/rooms"

	"github.com/stretchr/testify/assert"
)

func testRoom(t *testing.T) (*rooms.Registry, *game.Room) {
	t.Helper()
	registry := rooms.NewRegistry()
	owner := &game.Session{AccountID: "alice", ConnectionID: "conn-1", DisplayName: "Alice"}
	room := registry.Create(owner, "Table", 4, "", game.RoomPublic)
	return registry, room
}

func TestUpdateBarsMergesCharacters(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	room.Game.Schema.Bars = []game.BarSchema{{ID: "bar-hp", Name: "Health"}}
	room.Game.Characters = append(room.Game.Characters, &game.Character{
		ID:   "char-1",
		Bars: []game.CharacterBar{{SchemaID: "bar-hp", Current: 37, Max: 90}},
	})

	// Remove Health, add Mana.
	result := service.UpdateBars(room.ID, []game.BarSchema{{ID: "bar-mp", Name: "Mana"}})

	assert.NotNil(t, result)
	character := room.Game.Characters[0]
	assert.Nil(t, character.Bar("bar-hp"))
	mana := character.Bar("bar-mp")
	assert.NotNil(t, mana)
	assert.Equal(t, 100, mana.Current)
	assert.Equal(t, 100, mana.Max)
}

func TestUpdateBarsKeepsSurvivingValues(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	room.Game.Schema.Bars = []game.BarSchema{{ID: "bar-hp", Name: "Health"}}
	room.Game.Characters = append(room.Game.Characters, &game.Character{
		ID:   "char-1",
		Bars: []game.CharacterBar{{SchemaID: "bar-hp", Current: 37, Max: 90}},
	})

	service.UpdateBars(room.ID, []game.BarSchema{
		{ID: "bar-hp", Name: "Health"},
		{ID: "bar-mp", Name: "Mana"},
	})

	character := room.Game.Characters[0]
	assert.Equal(t, 37, character.Bar("bar-hp").Current)
	assert.Equal(t, 90, character.Bar("bar-hp").Max)
	assert.Equal(t, 100, character.Bar("bar-mp").Current)
}

func TestUpdateBarsSyncsDummiesInBothWindows(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	room.Game.Battlefield.MasterDummies = []*game.DummyDefinition{{
		ID:      "dummy-1",
		BarsMax: []game.DummyBarMax{{SchemaID: "bar-hp", Max: 30, Include: true}},
	}}
	room.Game.Battlefield.PlayersDummies = []*game.DummyDefinition{{ID: "dummy-2"}}

	service.UpdateBars(room.ID, []game.BarSchema{
		{ID: "bar-hp", Name: "Health"},
		{ID: "bar-mp", Name: "Mana"},
	})

	master := room.Game.Battlefield.MasterDummies[0]
	assert.Equal(t, 30, master.BarMax("bar-hp").Max)
	assert.True(t, master.BarMax("bar-hp").Include)
	// Synthesized slots default to max 100 and stay hidden.
	assert.Equal(t, 100, master.BarMax("bar-mp").Max)
	assert.False(t, master.BarMax("bar-mp").Include)

	players := room.Game.Battlefield.PlayersDummies[0]
	assert.Len(t, players.BarsMax, 2)
}

func TestUpdateSpecialsMerges(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	room.Game.Characters = append(room.Game.Characters, &game.Character{
		ID:       "char-1",
		Specials: []game.CharacterSpecial{{SchemaID: "sp-str", Current: 9}},
	})

	result := service.UpdateSpecials(room.ID, []game.SpecialSchema{
		{ID: "sp-str", Name: "Strength"},
		{ID: "sp-dex", Name: "Dexterity"},
	})

	assert.NotNil(t, result)
	character := room.Game.Characters[0]
	assert.Equal(t, 9, character.Special("sp-str").Current)
	assert.Equal(t, 5, character.Special("sp-dex").Current)
}

func TestUpdateEffectsDropsRemovedIDsOnly(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	room.Game.Characters = append(room.Game.Characters, &game.Character{
		ID:      "char-1",
		Effects: []string{"fx-poison", "fx-haste"},
	})

	result := service.UpdateEffects(room.ID, []game.EffectSchema{
		{ID: "fx-haste", Name: "Haste"},
		{ID: "fx-slow", Name: "Slow"},
	})

	assert.NotNil(t, result)
	// Removed ids disappear; new schema entries are never attached on
	// their own.
	assert.Equal(t, []string{"fx-haste"}, room.Game.Characters[0].Effects)
}

func TestUpdateUnknownRoomIsNil(t *testing.T) {
	service := NewService(rooms.NewRegistry())

	assert.Nil(t, service.UpdateBars("missing", nil))
	assert.Nil(t, service.UpdateSpecials("missing", nil))
	assert.Nil(t, service.UpdateEffects("missing", nil))
}
