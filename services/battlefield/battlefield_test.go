package battlefield

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
	room := registry.Create(owner, "Arena", 4, "", game.RoomPublic)
	room.Game.Schema = *testSchema()
	return registry, room
}

func goblin() *game.DummyDefinition {
	return &game.DummyDefinition{
		Name: "Goblin",
		BarsMax: []game.DummyBarMax{
			{SchemaID: "bar-hp", Max: 30, Include: true},
		},
	}
}

func TestCreateDummyAssignsID(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	dummy := service.CreateDummy(room.ID, game.FieldMaster, goblin())

	assert.NotEmpty(t, dummy.ID)
	assert.Len(t, room.Game.Battlefield.MasterDummies, 1)
	assert.Empty(t, room.Game.Battlefield.PlayersDummies)
}

func TestAddToFieldStartsBarsAtMax(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldMaster, goblin())

	field := service.AddToField(room.ID, game.FieldMaster, dummy.ID)

	assert.Len(t, field, 1)
	instance := field[0]
	assert.NotEmpty(t, instance.InstanceID)
	assert.Equal(t, dummy.ID, instance.DefinitionID)
	assert.Equal(t, 30, instance.Bar("bar-hp").Value)
}

func TestAddToFieldTwiceYieldsIndependentInstances(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldMaster, goblin())

	service.AddToField(room.ID, game.FieldMaster, dummy.ID)
	field := service.AddToField(room.ID, game.FieldMaster, dummy.ID)

	assert.Len(t, field, 2)
	assert.NotEqual(t, field[0].InstanceID, field[1].InstanceID)

	service.PatchInstanceBar(room.ID, game.FieldMaster, field[0].InstanceID, "bar-hp", 5)
	assert.Equal(t, 5, field[0].Bar("bar-hp").Value)
	assert.Equal(t, 30, field[1].Bar("bar-hp").Value)
}

func TestUpdateDummyFieldPatchesBarMax(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldMaster, goblin())

	service.UpdateDummyField(room.ID, game.FieldMaster, dummy.ID, "barsMax", 50.0, "bar-hp")
	service.UpdateDummyField(room.ID, game.FieldMaster, dummy.ID, "name", "Hobgoblin", "")

	assert.Equal(t, 50, dummy.BarMax("bar-hp").Max)
	assert.Equal(t, "Hobgoblin", dummy.Name)
}

func TestRemoveDummyTakesInstancesWithIt(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldMaster, goblin())
	other := service.CreateDummy(room.ID, game.FieldMaster, &game.DummyDefinition{Name: "Orc"})
	service.AddToField(room.ID, game.FieldMaster, dummy.ID)
	service.AddToField(room.ID, game.FieldMaster, other.ID)

	removed := service.RemoveDummy(room.ID, game.FieldMaster, dummy.ID)

	assert.Equal(t, dummy.ID, removed)
	assert.Len(t, room.Game.Battlefield.MasterDummies, 1)
	assert.Len(t, room.Game.Battlefield.MasterField, 1)
	assert.Equal(t, other.ID, room.Game.Battlefield.MasterField[0].DefinitionID)
}

func TestRemoveAllFromFieldKeepsDefinition(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldPlayers, goblin())
	service.AddToField(room.ID, game.FieldPlayers, dummy.ID)
	service.AddToField(room.ID, game.FieldPlayers, dummy.ID)

	field := service.RemoveAllFromField(room.ID, game.FieldPlayers, dummy.ID)

	assert.Empty(t, field)
	assert.Len(t, room.Game.Battlefield.PlayersDummies, 1)
}

func TestMakeActionCharacterOnCharacter(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	attacker := testCharacter()
	target := &game.Character{
		ID:   "char-2",
		Name: "Victim",
		Bars: []game.CharacterBar{{SchemaID: "bar-hp", Current: 60, Max: 100}},
	}
	room.Game.Characters = append(room.Game.Characters, attacker, target)

	action := game.ActionTemplate{
		Title:  "Strike",
		Target: game.ActionTarget{BarSchemaID: "bar-hp", Formula: "-$Strength$"},
	}
	result := service.MakeAction(room.ID, action, target.ID, attacker.ID, "alice")

	assert.NotNil(t, result)
	assert.Equal(t, 53, target.Bar("bar-hp").Current)
}

func TestMakeActionDummyInitiator(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldMaster, goblin())
	field := service.AddToField(room.ID, game.FieldMaster, dummy.ID)

	victim := testCharacter()
	room.Game.Characters = append(room.Game.Characters, victim)

	action := game.ActionTemplate{
		Title:  "Bite",
		Target: game.ActionTarget{BarSchemaID: "bar-hp", Formula: "0-$Health$/10"},
	}
	service.MakeAction(room.ID, action, victim.ID, field[0].InstanceID, "alice")

	// Instance health is 30, so the formula resolves to -3.
	assert.Equal(t, 47, victim.Bar("bar-hp").Current)
}

func TestMakeActionUnknownInitiatorAppliesZero(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	victim := testCharacter()
	room.Game.Characters = append(room.Game.Characters, victim)

	action := game.ActionTemplate{
		Target: game.ActionTarget{BarSchemaID: "bar-hp", Formula: "5"},
	}
	result := service.MakeAction(room.ID, action, victim.ID, "ghost", "alice")

	assert.NotNil(t, result)
	assert.Equal(t, 50, victim.Bar("bar-hp").Current)
}

func TestMakeActionDivisionByZeroIsGuarded(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	attacker := testCharacter()
	victim := &game.Character{
		ID:   "char-2",
		Bars: []game.CharacterBar{{SchemaID: "bar-hp", Current: 60, Max: 100}},
	}
	room.Game.Characters = append(room.Game.Characters, attacker, victim)

	action := game.ActionTemplate{
		Target: game.ActionTarget{BarSchemaID: "bar-hp", Formula: "5/0"},
	}
	service.MakeAction(room.ID, action, victim.ID, attacker.ID, "alice")

	assert.Equal(t, 60, victim.Bar("bar-hp").Current)
}

func TestMakeActionTargetInstance(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	dummy := service.CreateDummy(room.ID, game.FieldPlayers, goblin())
	field := service.AddToField(room.ID, game.FieldPlayers, dummy.ID)

	attacker := testCharacter()
	room.Game.Characters = append(room.Game.Characters, attacker)

	action := game.ActionTemplate{
		Target: game.ActionTarget{BarSchemaID: "bar-hp", Formula: "0-12"},
	}
	service.MakeAction(room.ID, action, field[0].InstanceID, attacker.ID, "alice")

	assert.Equal(t, 18, field[0].Bar("bar-hp").Value)
}

func TestServiceUnknownRoomIsNil(t *testing.T) {
	service := NewService(rooms.NewRegistry())

	assert.Nil(t, service.CreateDummy("missing", game.FieldMaster, goblin()))
	assert.Nil(t, service.AddToField("missing", game.FieldMaster, "x"))
	assert.Nil(t, service.MakeAction("missing", game.ActionTemplate{}, "a", "b", "c"))
}
