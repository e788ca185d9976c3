package documents

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

func TestCreateStartsEmpty(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)

	doc := service.Create(room.ID, "Session notes", "What happened so far")

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Session notes", doc.Title)
	assert.Empty(t, doc.Content)
	assert.Len(t, room.Game.Documents, 1)
	assert.Nil(t, service.Create("missing", "t", "d"))
}

func TestUpdateField(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	doc := service.Create(room.ID, "Notes", "")

	service.UpdateField(room.ID, doc.ID, "content", "<p>hello</p>")
	service.UpdateField(room.ID, doc.ID, "title", "Chapter 1")

	assert.Equal(t, "<p>hello</p>", doc.Content)
	assert.Equal(t, "Chapter 1", doc.Title)
	assert.Nil(t, service.UpdateField(room.ID, "missing", "title", "x"))
}

func TestRemove(t *testing.T) {
	registry, room := testRoom(t)
	service := NewService(registry)
	doc := service.Create(room.ID, "Notes", "")

	removed := service.Remove(room.ID, doc.ID)

	assert.Equal(t, doc.ID, removed)
	assert.Empty(t, room.Game.Documents)
}
