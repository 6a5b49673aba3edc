package chat

import "time"

// Roles a transcript message can carry.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// Session groups the messages of one chat demo visitor.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a single chat bubble.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // "user" or "ai"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Clock returns the two-digit hour:minute stamp shown under a bubble.
func (m Message) Clock() string {
	return Clock(m.CreatedAt)
}

// Clock formats t as HH:MM in local time.
func Clock(t time.Time) string {
	return t.Local().Format("15:04")
}
