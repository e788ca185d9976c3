package game

// Doc is a shared text document of a room (session notes, handouts).
type Doc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
