package chat

import (
	"testing"

	"Fabler/models/game"
	"Fabler/services/rooms"

	"github.com/stretchr/testify/assert"
)

func testSession(accountID string) *game.Session {
	return &game.Session{
		AccountID:    accountID,
		ConnectionID: "conn-" + accountID,
		DisplayName:  accountID,
		Status:       game.StatusInRoom,
	}
}

func TestCreateRoomMessageStoresPlainText(t *testing.T) {
	roomRegistry := rooms.NewRegistry()
	alice := testSession("alice")
	room := roomRegistry.Create(alice, "Chat", 4, "", game.RoomPublic)
	service := NewService(roomRegistry)

	message := service.CreateRoomMessage(alice, room.ID, "  hello there  ")

	assert.NotNil(t, message)
	assert.Equal(t, "hello there", message.Text)
	assert.Equal(t, "alice", message.AuthorID)
	assert.False(t, message.IsCommand)
	assert.Empty(t, message.RawCommand)
	assert.Len(t, service.RoomMessages(room.ID), 1)
}

func TestCreateRoomMessageRendersDiceCommand(t *testing.T) {
	roomRegistry := rooms.NewRegistry()
	alice := testSession("alice")
	room := roomRegistry.Create(alice, "Chat", 4, "", game.RoomPublic)
	service := NewService(roomRegistry)

	message := service.CreateRoomMessage(alice, room.ID, "/2d1")

	assert.True(t, message.IsCommand)
	assert.Equal(t, "/2d1", message.RawCommand)
	assert.Equal(t, "[1 1]", message.Text)
}

func TestCreateRoomMessageUnknownRoom(t *testing.T) {
	service := NewService(rooms.NewRegistry())

	assert.Nil(t, service.CreateRoomMessage(testSession("alice"), "missing", "hi"))
	assert.Nil(t, service.RoomMessages("missing"))
}

func TestLobbyLogIsSharedAcrossRooms(t *testing.T) {
	service := NewService(rooms.NewRegistry())

	service.CreateLobbyMessage(testSession("alice"), "hello lobby")
	service.CreateLobbyMessage(testSession("bob"), "/d")

	log := service.LobbyMessages()
	assert.Len(t, log, 2)
	assert.False(t, log[0].IsCommand)
	assert.True(t, log[1].IsCommand)
}
