package handlers

import (
	"log"

	socketio_types "Fabler/services/socket_io/types"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleSendMessageLobby stores a lobby-wide message and broadcasts it
// to everyone.
func HandleSendMessageLobby(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing message payload"})
			return
		}

		session := st.Presence.FindByConnection(string(client.Id()))
		if session == nil {
			client.Emit("error", gin.H{"error": "Not online"})
			return
		}

		message := st.Chat.CreateLobbyMessage(session, getString(data, "text"))
		sio.Sio_server.Emit("get_lobby_message", gin.H{"message": message})
	}
}

// HandleSendMessageRoom stores a room message — dice commands are rolled
// before storage — and broadcasts it to the room group.
func HandleSendMessageRoom(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing message payload"})
			return
		}

		session := st.Presence.FindByConnection(string(client.Id()))
		if session == nil {
			client.Emit("error", gin.H{"error": "Not online"})
			return
		}

		roomID := getString(data, "roomId")
		message := st.Chat.CreateRoomMessage(session, roomID, getString(data, "text"))
		if message == nil {
			log.Printf("[CHAT-ERROR] room %s not found for message from %s", roomID, accountID)
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_room_message", gin.H{"message": message})
	}
}

// HandleRequestRoomMessages replays a room's chat log to the sender.
func HandleRequestRoomMessages(st *store.Store, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		client.Emit("get_room_chat", gin.H{
			"roomId":   roomID,
			"messages": st.Chat.RoomMessages(roomID),
		})
	}
}
