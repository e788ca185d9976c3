package handlers

import (
	socketio_types "Fabler/services/socket_io/types"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

func HandleCreateDoc(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing doc payload"})
			return
		}

		roomID := getString(data, "roomId")
		doc := st.Documents.Create(roomID, getString(data, "title"), getString(data, "description"))
		if doc == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_created_doc", gin.H{"doc": doc})
	}
}

func HandleUpdateDoc(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing doc payload"})
			return
		}

		roomID := getString(data, "roomId")
		doc := st.Documents.UpdateField(roomID, getString(data, "docId"),
			getString(data, "field"), getString(data, "value"))
		if doc == nil {
			client.Emit("error", gin.H{"error": "Doc not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_updated_doc", gin.H{"doc": doc})
	}
}

func HandleRemoveDoc(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing doc payload"})
			return
		}

		roomID := getString(data, "roomId")
		removedID := st.Documents.Remove(roomID, getString(data, "docId"))
		if removedID == "" {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_removed_doc", gin.H{"docId": removedID})
	}
}
