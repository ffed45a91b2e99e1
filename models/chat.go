package models

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one entry in a conversation transcript.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
