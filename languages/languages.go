// Package languages is the static translation lookup the realtime core
// leans on for user-facing status messages and for the localized formula
// tokens. The catalogue mirrors what the frontend ships; only the keys
// the backend emits are kept here.
package languages

var messages = map[string]string{
	"room.success.created":     "Room created",
	"room.success.join":        "You joined the room",
	"room.info.userJoin":       "A player joined the room",
	"room.info.userLeft":       "A player left the room",
	"room.info.userRejoin":     "A player reconnected",
	"room.error.full":          "The room is full",
	"room.error.wrongPassword": "Wrong room password",
	"room.error.notFound":      "Room not found",
}

// T resolves a message key, falling back to the key itself so a missing
// entry stays visible instead of rendering empty.
func T(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}

// Localized formula tokens. A $...$ variable starting with a max prefix
// reads a bar's maximum; one equal to a roll token reads the author's
// most recent dice roll.
var (
	MaxPrefixes = []string{"Max", "Макс."}
	RollTokens  = []string{"Roll", "Ролл"}
)
