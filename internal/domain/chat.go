package domain

// Role identifies the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is a single message in a conversation transcript.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
