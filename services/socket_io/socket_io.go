package socket_io

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Fabler/services/socket_io/handlers"
	socketio_types "Fabler/services/socket_io/types"
	socketio_utils "Fabler/services/socket_io/utils"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type SocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and registers
// every realtime event against the shared store. Each connected socket
// is authenticated once from its handshake token; the account id is
// captured by the handler closures.
func (sio *SocketServer) Start(router *gin.Engine, st *store.Store) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// Higher ping interval/timeout: less network chatter and room for
	// slow connections before the disconnect fires.
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.UserConnections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		success, accountID := socketio_utils.VerifyUserConnection(client, st)
		if !success {
			return
		}

		self := (*socketio_types.SocketServer)(sio)
		self.AddConnection(accountID, client)
		log.Printf("[CONNECT] account %s connected on socket %s", accountID, client.Id())

		// Presence
		client.On("set_user_online", handlers.HandleSetUserOnline(st, client, self, accountID))
		client.On("request_lobby_users", handlers.HandleRequestLobbyUsers(st, client))
		client.On("user_logout", handlers.HandleUserLogout(st, client, self, accountID))

		// Rooms
		client.On("request_preview_rooms", handlers.HandleRequestPreviewRooms(st, client))
		client.On("create_room", handlers.HandleCreateRoom(st, client, self, accountID))
		client.On("join_room", handlers.HandleJoinRoom(st, client, self, accountID))
		client.On("leave_room", handlers.HandleLeaveRoom(st, client, self, accountID))

		// Chat
		client.On("send_message_lobby", handlers.HandleSendMessageLobby(st, client, self, accountID))
		client.On("send_message_room", handlers.HandleSendMessageRoom(st, client, self, accountID))
		client.On("request_room_messages", handlers.HandleRequestRoomMessages(st, client))

		// Characters
		client.On("create_character", handlers.HandleCreateCharacter(st, client, self))
		client.On("update_character", handlers.HandleUpdateCharacter(st, client, self))
		client.On("update_character_field", handlers.HandleUpdateCharacterField(st, client, self))
		client.On("remove_character", handlers.HandleRemoveCharacter(st, client, self))

		// Character settings schema
		client.On("update_settings_bars", handlers.HandleUpdateSettingsBars(st, client, self))
		client.On("update_settings_specials", handlers.HandleUpdateSettingsSpecials(st, client, self))
		client.On("update_settings_effects", handlers.HandleUpdateSettingsEffects(st, client, self))

		// Battlefield
		client.On("create_dummy", handlers.HandleCreateDummy(st, client, self))
		client.On("update_dummy", handlers.HandleUpdateDummy(st, client, self))
		client.On("update_dummy_field", handlers.HandleUpdateDummyField(st, client, self))
		client.On("add_dummy_to_field", handlers.HandleAddDummyToField(st, client, self))
		client.On("update_dummy_field_on_battlefield", handlers.HandleUpdateDummyFieldOnBattlefield(st, client, self))
		client.On("remove_dummy", handlers.HandleRemoveDummy(st, client, self))
		client.On("remove_dummy_from_field", handlers.HandleRemoveDummyFromField(st, client, self))
		client.On("remove_dummies_from_field", handlers.HandleRemoveDummiesFromField(st, client, self))
		client.On("make_action_in_battlefield", handlers.HandleMakeAction(st, client, self, accountID))

		// Documents
		client.On("create_doc", handlers.HandleCreateDoc(st, client, self))
		client.On("update_doc", handlers.HandleUpdateDoc(st, client, self))
		client.On("remove_doc", handlers.HandleRemoveDoc(st, client, self))

		client.On("disconnecting", handlers.HandleDisconnecting(st, client, self, accountID))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for range signalC {
			sio.Sio_server.Close(nil)
			os.Exit(0)
		}
	}()

	log.Println("Socket server started")
}
