package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/oceanai/internal/db"
)

// Store persists chat demo transcripts.
type Store struct {
	db *db.DB
}

// NewStore creates a new transcript store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateSession creates a new chat session.
func (s *Store) CreateSession(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		userID = "anonymous"
	}
	now := time.Now().UTC()
	sess := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, user_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.UserID, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &sess, nil
}

// SessionExists reports whether id names a stored session.
func (s *Store) SessionExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("looking up session: %w", err)
	}
	return n > 0, nil
}

// AddMessage adds a message to a chat session.
func (s *Store) AddMessage(ctx context.Context, msg Message) (*Message, error) {
	if msg.Role != RoleUser && msg.Role != RoleAI {
		return nil, fmt.Errorf("invalid role %q", msg.Role)
	}
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.SessionID, msg.Role, msg.Content, msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("adding message: %w", err)
	}

	// Update session timestamp.
	if _, err := s.db.ExecContext(ctx, `UPDATE chat_sessions SET updated_at = ? WHERE id = ?`, msg.CreatedAt, msg.SessionID); err != nil {
		return nil, fmt.Errorf("touching session: %w", err)
	}

	return &msg, nil
}

// GetMessages returns all messages for a session, ordered by creation time.
func (s *Store) GetMessages(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY created_at ASC, rowid ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CountSessions returns the total number of chat sessions.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&count)
	return count, err
}

// CountMessages returns the number of stored messages with the given role,
// or of all messages when role is empty.
func (s *Store) CountMessages(ctx context.Context, role string) (int, error) {
	var count int
	var err error
	if role == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_messages`).Scan(&count)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_messages WHERE role = ?`, role).Scan(&count)
	}
	return count, err
}
