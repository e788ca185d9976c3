// Package presence tracks the live session of every known account:
// connection id and offline/online/inRoom status. Sessions survive
// disconnects; only the connection id changes on reconnect.
package presence

import (
	"Fabler/models/game"
	models "Fabler/models/postgres"
)

// Registry holds one session per account for the process lifetime.
// It is composed once at startup and injected where needed; there is
// no package-level state.
type Registry struct {
	sessions []*game.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: []*game.Session{}}
}

// Init preloads offline sessions for every persisted account, so lobby
// listings can show known players before they connect.
func (r *Registry) Init(accounts []*models.Account) {
	r.sessions = make([]*game.Session, 0, len(accounts))
	for _, account := range accounts {
		r.sessions = append(r.sessions, &game.Session{
			AccountID:   account.ID,
			DisplayName: account.DisplayName,
			Origin:      game.AccountOrigin(account.Origin),
			Status:      game.StatusOffline,
		})
	}
}

// Create registers a session for a freshly signed-up account.
func (r *Registry) Create(account *models.Account) *game.Session {
	session := &game.Session{
		AccountID:   account.ID,
		DisplayName: account.DisplayName,
		Origin:      game.AccountOrigin(account.Origin),
		Status:      game.StatusOffline,
	}
	r.sessions = append(r.sessions, session)
	return session
}

// All returns every known session.
func (r *Registry) All() []*game.Session {
	return r.sessions
}

// GoOnline binds the account's session to a connection and marks it
// online. Reconnects overwrite the previous connection id (last write
// wins). Returns nil for unknown accounts.
func (r *Registry) GoOnline(accountID, connectionID string) *game.Session {
	session := r.FindByAccount(accountID)
	if session == nil {
		return nil
	}
	session.ConnectionID = connectionID
	session.Status = game.StatusOnline
	return session
}

// GoOffline clears the session owning the given connection. Looking the
// session up by connection id makes a stale disconnect harmless: after a
// rejoin the session carries a newer connection id, the lookup misses and
// the cleanup is discarded. "Not found" is a normal result.
func (r *Registry) GoOffline(connectionID string) *game.Session {
	session := r.FindByConnection(connectionID)
	if session == nil {
		return nil
	}
	session.ConnectionID = ""
	session.Status = game.StatusOffline
	return session
}

// EnterRoom flips the session of a connection to the inRoom status.
func (r *Registry) EnterRoom(connectionID string) *game.Session {
	session := r.FindByConnection(connectionID)
	if session == nil {
		return nil
	}
	session.Status = game.StatusInRoom
	return session
}

// LeaveRoom drops the session of a connection back to plain online.
func (r *Registry) LeaveRoom(connectionID string) *game.Session {
	session := r.FindByConnection(connectionID)
	if session == nil {
		return nil
	}
	session.Status = game.StatusOnline
	return session
}

// Logout clears the connection and, for guests, deletes the session
// entirely. The returned session has an emptied display name for guests
// so the frontend knows to drop it from the lobby list.
func (r *Registry) Logout(connectionID string) *game.Session {
	for i, session := range r.sessions {
		if session.ConnectionID != connectionID || connectionID == "" {
			continue
		}
		session.ConnectionID = ""
		session.Status = game.StatusOffline
		if session.Origin == game.OriginGuest {
			session.DisplayName = ""
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
		}
		return session
	}
	return nil
}

// FindByAccount returns the session of an account, or nil.
func (r *Registry) FindByAccount(accountID string) *game.Session {
	for _, session := range r.sessions {
		if session.AccountID == accountID {
			return session
		}
	}
	return nil
}

// FindByConnection returns the session bound to a connection, or nil.
// Empty connection ids never match (offline sessions all carry "").
func (r *Registry) FindByConnection(connectionID string) *game.Session {
	if connectionID == "" {
		return nil
	}
	for _, session := range r.sessions {
		if session.ConnectionID == connectionID {
			return session
		}
	}
	return nil
}
