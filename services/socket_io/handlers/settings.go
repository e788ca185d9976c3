package handlers

import (
	"Fabler/models/game"
	socketio_types "Fabler/services/socket_io/types"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Schema updates fan out to every character and dummy in the room, so
// the whole touched state goes back to the room group in one payload.

func HandleUpdateSettingsBars(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing settings payload"})
			return
		}

		var bars []game.BarSchema
		if err := decode(data["bars"], &bars); err != nil {
			client.Emit("error", gin.H{"error": "Malformed bars schema"})
			return
		}

		roomID := getString(data, "roomId")
		result := st.Settings.UpdateBars(roomID, bars)
		if result == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_settings_bars", result)
	}
}

func HandleUpdateSettingsSpecials(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing settings payload"})
			return
		}

		var specials []game.SpecialSchema
		if err := decode(data["specials"], &specials); err != nil {
			client.Emit("error", gin.H{"error": "Malformed specials schema"})
			return
		}

		roomID := getString(data, "roomId")
		result := st.Settings.UpdateSpecials(roomID, specials)
		if result == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_settings_specials", result)
	}
}

func HandleUpdateSettingsEffects(st *store.Store, client *socket.Socket, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		st.Lock()
		defer st.Unlock()

		data, ok := payload(args)
		if !ok {
			client.Emit("error", gin.H{"error": "Missing settings payload"})
			return
		}

		var effects []game.EffectSchema
		if err := decode(data["effects"], &effects); err != nil {
			client.Emit("error", gin.H{"error": "Malformed effects schema"})
			return
		}

		roomID := getString(data, "roomId")
		result := st.Settings.UpdateEffects(roomID, effects)
		if result == nil {
			client.Emit("error", gin.H{"error": "Room not found"})
			return
		}

		sio.Sio_server.To(socket.Room(roomID)).Emit("get_settings_effects", result)
	}
}
