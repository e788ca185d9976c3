package handlers

import (
	"Fabler/models/game"
	socketio_types "Fabler/services/socket_io/types"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

func HandleCreateCharacter(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing character payload"})
			return
		}

		var character game.Character
		if err := decode(data["character"], &character); err != nil {
			client.Emit("error", gin.H{"error": "Malformed character"})
			return
		}

		roomID := getString(data, "roomId")
		created := st.Characters.Create(roomID, &character)
		if created == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_created_character", gin.H{"character": created})
	}
}

func HandleUpdateCharacter(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing character payload"})
			return
		}

		var character game.Character
		if err := decode(data["character"], &character); err != nil {
			client.Emit("error", gin.H{"error": "Malformed character"})
			return
		}

		roomID := getString(data, "roomId")
		updated := st.Characters.Update(roomID, &character)
		if updated == nil {
			client.Emit("error", gin.H{"error": "Character not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_updated_character", gin.H{"character": updated})
	}
}

func HandleUpdateCharacterField(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		updated := st.Characters.UpdateField(roomID, getString(data, "characterId"),
			getString(data, "field"), data["value"], getString(data, "subFieldId"))
		if updated == nil {
			client.Emit("error", gin.H{"error": "Character not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_updated_character", gin.H{"character": updated})
	}
}

func HandleRemoveCharacter(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		removedID := st.Characters.Remove(roomID, getString(data, "characterId"))
		if removedID == "" {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_removed_character", gin.H{"characterId": removedID})
	}
}
