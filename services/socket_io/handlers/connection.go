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

// HandleSetUserOnline binds the authenticated account to this socket.
// When the account is still a member of a live room this is the
// reconnect path: the membership's connection id is swapped (size
// untouched) and the full room is replayed to the sender.
func HandleSetUserOnline(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		connectionID := string(client.Id())
		session := st.Presence.GoOnline(accountID, connectionID)
		if session == nil {
			log.Printf("[ONLINE-ERROR] no session for account %s", accountID)
			client.Emit("error", gin.H{"error": "Unknown account"})
			return
		}
		log.Printf("[ONLINE] account %s online on connection %s", accountID, connectionID)

		if room := st.Rooms.FindByAccount(accountID); room != nil {
			st.Rooms.Rejoin(accountID, room.ID, connectionID)
			session = st.Presence.EnterRoom(connectionID)
			client.Join(socket.Room(room.ID))
			log.Printf("[ONLINE] account %s rejoined room %s", accountID, room.ID)

			client.Emit("get_full_room", gin.H{
				"fullRoom": room,
				"status":   game.MsgInfo,
				"message":  languages.T("room.info.userRejoin"),
			})
			sio.Sio_server.Emit("get_preview_room", gin.H{
				"previewRoom": st.Rooms.ToPreview(room),
			})
		}

		sio.Sio_server.Emit("get_lobby_user", gin.H{"user": session})
	}
}

// HandleRequestLobbyUsers replays every known session to the sender.
func HandleRequestLobbyUsers(st *store.Store, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		client.Emit("get_lobby_users", gin.H{"users": st.Presence.All()})
	}
}

// HandleUserLogout clears the session on an explicit logout. Guest
// sessions disappear entirely, together with their throwaway account.
// A room id in the payload means the user logs out from inside a room
// and is removed from it first.
func HandleUserLogout(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		if data, ok := payload(args); ok {
			if roomID := getString(data, "roomId"); roomID != "" {
				leaveRoom(st, client, sio, accountID, roomID)
			}
		}

		session := st.Presence.Logout(string(client.Id()))
		if session == nil {
			return
		}

		if session.Origin == game.OriginGuest {
			if err := st.Accounts.DeleteAccount(accountID); err != nil {
				log.Printf("[LOGOUT-ERROR] deleting guest account %s: %v", accountID, err)
			}
		}

		log.Printf("[LOGOUT] account %s logged out", accountID)
		client.Broadcast().Emit("get_lobby_user", gin.H{"user": session})
	}
}

// HandleDisconnecting fires when a socket drops for any reason. The
// session goes offline but room membership is kept — a page reload comes
// back through the rejoin path. The presence lookup is by connection id,
// so a disconnect that lost the race against a newer rejoin finds
// nothing and is discarded.
func HandleDisconnecting(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		session := st.Presence.GoOffline(string(client.Id()))
		st.Unlock()

		sio.RemoveConnection(accountID, client)

		if session == nil {
			log.Printf("[DISCONNECT] stale disconnect for account %s ignored", accountID)
			return
		}

		log.Printf("[DISCONNECT] account %s offline", accountID)
		client.Broadcast().Emit("get_lobby_user", gin.H{"user": session})
	}
}
