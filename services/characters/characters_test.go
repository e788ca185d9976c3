package characters

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

func TestCreateAssignsID(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	character := service.Create(room.ID, &game.Character{Name: "Hero"})

	assert.NotEmpty(t, character.ID)
	assert.Len(t, room.Game.Characters, 1)
	assert.Nil(t, service.Create("missing", &game.Character{}))
}

func TestUpdateReplacesWholesale(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	character := service.Create(room.ID, &game.Character{Name: "Hero"})

	updated := service.Update(room.ID, &game.Character{ID: character.ID, Name: "Renamed", Level: 3})

	assert.NotNil(t, updated)
	assert.Equal(t, "Renamed", room.Game.Characters[0].Name)
	assert.Equal(t, 3, room.Game.Characters[0].Level)
	assert.Nil(t, service.Update(room.ID, &game.Character{ID: "missing"}))
}

func TestUpdateFieldPatchesScalars(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	character := service.Create(room.ID, &game.Character{Name: "Hero"})

	service.UpdateField(room.ID, character.ID, "name", "Villain", "")
	service.UpdateField(room.ID, character.ID, "level", 5.0, "")

	assert.Equal(t, "Villain", character.Name)
	assert.Equal(t, 5, character.Level)
}

func TestUpdateFieldPatchesBarAndSpecial(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	character := service.Create(room.ID, &game.Character{
		Name:     "Hero",
		Bars:     []game.CharacterBar{{SchemaID: "bar-hp", Current: 50, Max: 100}},
		Specials: []game.CharacterSpecial{{SchemaID: "sp-str", Current: 5}},
	})

	service.UpdateField(room.ID, character.ID, "bars", 42.0, "bar-hp")
	service.UpdateField(room.ID, character.ID, "specials", 8.0, "sp-str")

	assert.Equal(t, 42, character.Bar("bar-hp").Current)
	assert.Equal(t, 8, character.Special("sp-str").Current)
}

func TestUpdateFieldTogglesEffects(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	character := service.Create(room.ID, &game.Character{Name: "Hero"})

	service.UpdateField(room.ID, character.ID, "effects", "fx-poison", "")
	assert.Equal(t, []string{"fx-poison"}, character.Effects)

	service.UpdateField(room.ID, character.ID, "effects", "fx-poison", "")
	assert.Empty(t, character.Effects)
}

func TestRemove(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	character := service.Create(room.ID, &game.Character{Name: "Hero"})

	removed := service.Remove(room.ID, character.ID)

	assert.Equal(t, character.ID, removed)
	assert.Empty(t, room.Game.Characters)
	assert.Equal(t, "", service.Remove("missing", character.ID))
}
