package handlers

import (
	"log"

	"Fabler/languages"
	"Fabler/models/game"
	socketio_types "Fabler/services/socket_io/types"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandleRequestPreviewRooms replays the lobby room listing to the sender.
func HandleRequestPreviewRooms(st *store.Store, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		client.Emit("get_preview_rooms", gin.H{"previewRooms": st.Rooms.Previews()})
	}
}

// HandleCreateRoom creates a room with the sender as its first member.
// Creation always succeeds.
func HandleCreateRoom(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing room payload"})
			return
		}

		session := st.Presence.FindByConnection(string(client.Id()))
		if session == nil {
			client.Emit("error", gin.H{"error": "Not online"})
			return
		}

		visibility := game.RoomVisibility(getString(data, "type"))
		if visibility != game.RoomPrivate {
			visibility = game.RoomPublic
		}

		room := st.Rooms.Create(session, getString(data, "name"), getInt(data, "size"),
			getString(data, "password"), visibility)
		session = st.Presence.EnterRoom(string(client.Id()))
		client.Join(socket.Room(room.ID))
		log.Printf("[ROOM-CREATE] account %s created room %s (%s)", accountID, room.ID, room.Name)

		client.Broadcast().Emit("get_preview_room", gin.H{"previewRoom": st.Rooms.ToPreview(room)})
		client.Emit("get_full_room", gin.H{
			"fullRoom": room,
			"status":   game.MsgSuccess,
			"message":  languages.T("room.success.created"),
		})
		sio.Sio_server.Emit("get_lobby_user", gin.H{"user": session})
	}
}

// HandleJoinRoom joins the sender into a room, rejecting on capacity
// (checked first), then password for private rooms. Rejections go back
// on the same event the frontend is already waiting on.
func HandleJoinRoom(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing join payload"})
			return
		}

		session := st.Presence.FindByConnection(string(client.Id()))
		if session == nil {
			client.Emit("error", gin.H{"error": "Not online"})
			return
		}

		roomID := getString(data, "roomId")
		room, rejection := st.Rooms.Join(session, roomID, getString(data, "password"))
		if rejection != nil {
			log.Printf("[ROOM-JOIN] account %s rejected from room %s: %s", accountID, roomID, rejection.Code)
			client.Emit("get_full_room", gin.H{
				"status":  rejection.Status,
				"message": rejection.Message,
				"code":    rejection.Code,
			})
			return
		}

		session = st.Presence.EnterRoom(string(client.Id()))
		client.Join(socket.Room(room.ID))
		log.Printf("[ROOM-JOIN] account %s joined room %s (%d/%d)", accountID, room.ID, room.CurrentSize, room.Capacity)

		client.Emit("get_full_room", gin.H{
			"fullRoom": room,
			"status":   game.MsgSuccess,
			"message":  languages.T("room.success.join"),
		})
		client.To(socket.Room(room.ID)).Emit("get_full_room", gin.H{
			"fullRoom": room,
			"status":   game.MsgInfo,
			"message":  languages.T("room.info.userJoin"),
		})
		sio.Sio_server.Emit("get_preview_room", gin.H{"previewRoom": st.Rooms.ToPreview(room)})
		sio.Sio_server.Emit("get_lobby_user", gin.H{"user": session})
	}
}

// HandleLeaveRoom removes the sender from a room. Leaving as the last
// member destroys the room; the pre-deletion snapshot still goes out so
// the lobby sees the empty preview.
func HandleLeaveRoom(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing leave payload"})
			return
		}

		leaveRoom(st, client, sio, accountID, getString(data, "roomId"))
	}
}

// leaveRoom is shared between the explicit leave event and logout.
// Callers hold the store lock.
func leaveRoom(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID, roomID string) {
	room := st.Rooms.Leave(accountID, roomID)
	if room == nil {
		client.Emit("get_full_room", gin.H{
			"status":  game.MsgError,
			"message": languages.T("room.error.notFound"),
			"code":    "notFound",
		})
		return
	}

	session := st.Presence.LeaveRoom(string(client.Id()))
	client.Leave(socket.Room(roomID))
	log.Printf("[ROOM-LEAVE] account %s left room %s (size %d)", accountID, roomID, room.CurrentSize)

	client.To(socket.Room(roomID)).Emit("get_full_room", gin.H{
		"fullRoom": room,
		"status":   game.MsgInfo,
		"message":  languages.T("room.info.userLeft"),
	})
	sio.Sio_server.Emit("get_preview_room", gin.H{"previewRoom": st.Rooms.ToPreview(room)})
	if session != nil {
		sio.Sio_server.Emit("get_lobby_user", gin.H{"user": session})
	}
}
