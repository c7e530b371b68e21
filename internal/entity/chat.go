package entity

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message of the conversation. Turns are immutable once stored.
type ChatTurn struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (t ChatTurn) IsUser() bool {
	return t.Role == RoleUser
}
