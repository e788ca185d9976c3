package game

// Session status values. A session moves online <-> inRoom while the
// account is connected and falls back to offline on disconnect.
type SessionStatus string

const (
	StatusOffline SessionStatus = "offline"
	StatusOnline  SessionStatus = "online"
	StatusInRoom  SessionStatus = "inRoom"
)

// Where the account came from. Guest sessions (and their accounts) are
// throwaway and get deleted on logout.
type AccountOrigin string

const (
	OriginGuest AccountOrigin = "guest"
	OriginEmail AccountOrigin = "email"
)

/*
 * 'Session' is the live presence record of one account. There is at most
 * one per account; the connection id is rewritten on every reconnect.
 */
type Session struct {
	AccountID    string        `json:"accountId"`
	ConnectionID string        `json:"connectionId"`
	DisplayName  string        `json:"displayName"`
	Origin       AccountOrigin `json:"origin"`
	Status       SessionStatus `json:"status"`
}
