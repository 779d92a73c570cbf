package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleBot  ChatRole = "bot"
)

// WireRole returns the role name the chat endpoint expects in history turns
func (r ChatRole) WireRole() string {
	if r == ChatRoleUser {
		return "user"
	}
	return "model"
}

// ChatMessage is one entry of a chat transcript
type ChatMessage struct {
	ID     string    `json:"id"`
	Role   ChatRole  `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// NewChatMessage creates a message with a fresh id
func NewChatMessage(role ChatRole, text string) ChatMessage {
	return ChatMessage{
		ID:     "msg-" + uuid.NewString(),
		Role:   role,
		Text:   text,
		SentAt: time.Now(),
	}
}

// Transcript is an append-only chat history
type Transcript struct {
	messages []ChatMessage
}

// Append adds a message at the end
func (t *Transcript) Append(msg ChatMessage) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy of the history
func (t *Transcript) Messages() []ChatMessage {
	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	return len(t.messages)
}
