// Package contact stores messages sent through the contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/oceanai/internal/db"
)

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 50

// Validation errors returned by Submission.Validate.
var (
	ErrEmailRequired   = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is not a valid address")
	ErrMessageRequired = errors.New("message is required")
)

// Submission is one contact form message.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	RemoteAddr string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Normalize trims every text field.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
}

// Validate checks the required fields.
func (s Submission) Validate() error {
	if s.Email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return ErrInvalidEmail
	}
	if s.Message == "" {
		return ErrMessageRequired
	}
	return nil
}

// Store manages persistence of contact submissions.
type Store struct {
	db *db.DB
}

// NewStore creates a new contact store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create validates and inserts a submission.
func (s *Store) Create(ctx context.Context, sub Submission) (*Submission, error) {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	sub.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, remote_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.RemoteAddr, sub.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting contact message: %w", err)
	}
	return &sub, nil
}

// List returns the newest submissions first.
func (s *Store) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, remote_addr, created_at
		 FROM contact_messages ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying contact messages: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message, &sub.RemoteAddr, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Count returns the number of stored submissions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
