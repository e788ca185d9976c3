package socketio_utils

import (
	"log"

	"Fabler/middleware"
	"Fabler/services/store"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// VerifyUserConnection authenticates a freshly connected socket: the
// handshake auth map must carry a token issued at login, and the account
// it names must exist. Returns the account id on success.
func VerifyUserConnection(client *socket.Socket, st *store.Store) (bool, string) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		log.Printf("[AUTH-ERROR] no auth data in handshake, socket %s", client.Id())
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return false, ""
	}

	accountID, err := middleware.SocketJWTDecoder(authData)
	if err != nil {
		log.Printf("[AUTH-ERROR] decoding handshake token: %v", err)
		client.Emit("error", gin.H{"error": "Authentication failed: invalid token"})
		return false, ""
	}

	if _, err := st.Accounts.FindAccount(accountID); err != nil {
		log.Printf("[AUTH-ERROR] account %s not found: %v", accountID, err)
		client.Emit("error", gin.H{"error": "Authentication failed: unknown account"})
		return false, ""
	}

	return true, accountID
}
