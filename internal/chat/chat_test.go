package chat

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ziadkadry99/oceanai/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewStore(d)
}

func TestReplyIsCanned(t *testing.T) {
	r := NewResponder(rand.NewPCG(1, 2))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		reply := r.Reply()
		found := false
		for _, c := range Responses {
			if c == reply {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("unexpected reply %q", reply)
		}
		seen[reply] = true
	}
	if len(seen) != len(Responses) {
		t.Errorf("saw %d distinct replies over 200 draws, want %d", len(seen), len(Responses))
	}
}

type zeroSource struct{}

func (zeroSource) Uint64() uint64 { return 0 }

func TestReplyInjectedSource(t *testing.T) {
	r := NewResponder(zeroSource{})
	if got := r.Reply(); got != Responses[0] {
		t.Errorf("Reply() = %q, want first response", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"  hello  ", "hello", true},
		{"", "", false},
		{" \t\n", "", false},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Normalize(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClock(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 5, 0, 0, time.Local)
	if got := Clock(ts); got != "09:05" {
		t.Errorf("Clock() = %q, want 09:05", got)
	}
}

func TestSessionAndMessages(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.UserID != "anonymous" {
		t.Errorf("UserID = %q", sess.UserID)
	}
	if ok, err := s.SessionExists(ctx, sess.ID); err != nil || !ok {
		t.Errorf("SessionExists = %v, %v", ok, err)
	}
	if ok, _ := s.SessionExists(ctx, "missing"); ok {
		t.Error("SessionExists(missing) = true")
	}

	base := time.Now().UTC()
	if _, err := s.AddMessage(ctx, Message{SessionID: sess.ID, Role: RoleUser, Content: "hi", CreatedAt: base}); err != nil {
		t.Fatalf("AddMessage user: %v", err)
	}
	if _, err := s.AddMessage(ctx, Message{SessionID: sess.ID, Role: RoleAI, Content: Responses[2], CreatedAt: base.Add(time.Second)}); err != nil {
		t.Fatalf("AddMessage ai: %v", err)
	}

	msgs, err := s.GetMessages(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[1].Role != RoleAI {
		t.Errorf("unexpected order: %+v", msgs)
	}

	if n, _ := s.CountSessions(ctx); n != 1 {
		t.Errorf("CountSessions = %d", n)
	}
	if n, _ := s.CountMessages(ctx, RoleAI); n != 1 {
		t.Errorf("CountMessages(ai) = %d", n)
	}
	if n, _ := s.CountMessages(ctx, ""); n != 2 {
		t.Errorf("CountMessages() = %d", n)
	}
}

func TestAddMessageRejectsRole(t *testing.T) {
	s := setupStore(t)
	if _, err := s.AddMessage(context.Background(), Message{Role: "system", Content: "x"}); err == nil {
		t.Error("expected error for unknown role")
	}
}
