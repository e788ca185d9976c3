package handlers

import (
	"log"

	"Fabler/models/game"
	socketio_types "Fabler/services/socket_io/types"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

func fieldKind(data map[string]interface{}) game.FieldKind {
	if game.FieldKind(getString(data, "battlefield")) == game.FieldMaster {
		return game.FieldMaster
	}
	return game.FieldPlayers
}

func HandleCreateDummy(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing dummy payload"})
			return
		}

		var dummy game.DummyDefinition
		if err := decode(data["dummy"], &dummy); err != nil {
			client.Emit("error", gin.H{"error": "Malformed dummy"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		created := st.Battlefield.CreateDummy(roomID, kind, &dummy)
		if created == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_created_dummy", gin.H{
			"dummy":       created,
			"battlefield": kind,
		})
	}
}

func HandleUpdateDummy(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing dummy payload"})
			return
		}

		var dummy game.DummyDefinition
		if err := decode(data["dummy"], &dummy); err != nil {
			client.Emit("error", gin.H{"error": "Malformed dummy"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		updated := st.Battlefield.UpdateDummy(roomID, kind, &dummy)
		if updated == nil {
			client.Emit("error", gin.H{"error": "Dummy not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_updated_dummy", gin.H{
			"dummy":       updated,
			"battlefield": kind,
		})
	}
}

func HandleUpdateDummyField(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		updated := st.Battlefield.UpdateDummyField(roomID, kind, getString(data, "dummyId"),
			getString(data, "field"), data["value"], getString(data, "subFieldId"))
		if updated == nil {
			client.Emit("error", gin.H{"error": "Dummy not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_updated_dummy", gin.H{
			"dummy":       updated,
			"battlefield": kind,
		})
	}
}

func HandleAddDummyToField(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		field := st.Battlefield.AddToField(roomID, kind, getString(data, "dummyId"))
		if field == nil {
			client.Emit("error", gin.H{"error": "Dummy not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_dummies_on_battlefield", gin.H{
			"field":       field,
			"battlefield": kind,
		})
	}
}

func HandleUpdateDummyFieldOnBattlefield(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		field := st.Battlefield.PatchInstanceBar(roomID, kind, getString(data, "subId"),
			getString(data, "subFieldId"), getInt(data, "value"))
		if field == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_dummies_on_battlefield", gin.H{
			"field":       field,
			"battlefield": kind,
		})
	}
}

func HandleRemoveDummy(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		removedID := st.Battlefield.RemoveDummy(roomID, kind, getString(data, "dummyId"))
		if removedID == "" {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_removed_dummy", gin.H{
			"dummyId":     removedID,
			"battlefield": kind,
		})
	}
}

func HandleRemoveDummyFromField(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		field := st.Battlefield.RemoveFromField(roomID, kind, getString(data, "subId"))
		if field == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_dummies_on_battlefield", gin.H{
			"field":       field,
			"battlefield": kind,
		})
	}
}

func HandleRemoveDummiesFromField(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing payload"})
			return
		}

		roomID := getString(data, "roomId")
		kind := fieldKind(data)
		field := st.Battlefield.RemoveAllFromField(roomID, kind, getString(data, "dummyId"))
		if field == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_dummies_on_battlefield", gin.H{
			"field":       field,
			"battlefield": kind,
		})
	}
}

// HandleMakeAction executes an authored action: the formula is resolved
// against the initiator entity and the result applied to the target's
// bar. The touched slices go back to the room whole.
func HandleMakeAction(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer, accountID string) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing action payload"})
			return
		}

		var action game.ActionTemplate
		if err := decode(data["action"], &action); err != nil {
			client.Emit("error", gin.H{"error": "Malformed action"})
			return
		}

		roomID := getString(data, "roomId")
		result := st.Battlefield.MakeAction(roomID, action,
			getString(data, "targetId"), getString(data, "initiatorId"), accountID)
		if result == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		log.Printf("[ACTION] account %s executed %q in room %s", accountID, action.Title, roomID)
		sio.Sio_server.To(socket.Room(roomID)).Emit("get_initiation_action_on_battlefield", result)
	}
}
