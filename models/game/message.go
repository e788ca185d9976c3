package game

/*
 * 'ChatMessage' is one entry of a room or lobby chat log. For dice
 * commands Text holds the rendered roll and RawCommand the original
 * input; the raw form is what the formula resolver's "last roll"
 * lookup needs to identify command messages by author.
 */
type ChatMessage struct {
	ID         string `json:"id"`
	AuthorID   string `json:"authorId"`
	Author     string `json:"author"`
	Text       string `json:"text"`
	IsCommand  bool   `json:"isCommand"`
	RawCommand string `json:"rawCommand,omitempty"`
}
