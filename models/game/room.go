package game

// Room visibility. Private rooms require the password on join.
type RoomVisibility string

const (
	RoomPublic  RoomVisibility = "public"
	RoomPrivate RoomVisibility = "private"
)

// Status attached to server responses so the frontend can style the toast.
type MessageStatus string

const (
	MsgSuccess MessageStatus = "success"
	MsgError   MessageStatus = "error"
	MsgInfo    MessageStatus = "info"
)

// RoomMember ties an account to its current socket connection inside a room.
// It is a weak reference: the Session itself lives in the presence registry.
type RoomMember struct {
	AccountID    string `json:"accountId"`
	ConnectionID string `json:"connectionId"`
}

/*
 * 'Room' is one isolated game session: membership, chat log and the whole
 * in-memory game state. Invariant: CurrentSize == len(Members) <= Capacity.
 * The room is destroyed exactly when CurrentSize reaches 0.
 */
type Room struct {
	ID           string         `json:"id"`
	OwnerID      string         `json:"ownerId"`
	Name         string         `json:"name"`
	Capacity     int            `json:"size"`
	CurrentSize  int            `json:"currentSize"`
	Visibility   RoomVisibility `json:"type"`
	PasswordHash string         `json:"-"`
	Members      []RoomMember   `json:"members"`
	Messages     []ChatMessage  `json:"messages"`
	Game         GameState      `json:"game"`
}

// PreviewRoom is the lobby projection of a room: no password hash, no chat
// log, no game state.
type PreviewRoom struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"ownerId"`
	Name        string         `json:"name"`
	Capacity    int            `json:"size"`
	CurrentSize int            `json:"currentSize"`
	Visibility  RoomVisibility `json:"type"`
}

// GameState holds everything the room's game windows render.
type GameState struct {
	Characters  []*Character    `json:"characters"`
	Schema      CharacterSchema `json:"characterSchema"`
	Battlefield Battlefield     `json:"battlefield"`
	Documents   []*Doc          `json:"documents"`
}

// NewGameState returns an empty but non-nil game state for a fresh room.
func NewGameState() GameState {
	return GameState{
		Characters: []*Character{},
		Schema: CharacterSchema{
			Bars:     []BarSchema{},
			Specials: []SpecialSchema{},
			Effects:  []EffectSchema{},
		},
		Battlefield: Battlefield{
			MasterDummies:  []*DummyDefinition{},
			PlayersDummies: []*DummyDefinition{},
			MasterField:    []*FieldInstance{},
			PlayersField:   []*FieldInstance{},
		},
		Documents: []*Doc{},
	}
}
