package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/oceanai/internal/db"
)

func setupTest(t *testing.T) (*Store, chi.Router) {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := NewStore(database)
	r := chi.NewRouter()
	NewHandler(store).RegisterRoutes(r)
	return store, r
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want error
	}{
		{"ok", Submission{Email: "a@b.org", Message: "hi"}, nil},
		{"no email", Submission{Message: "hi"}, ErrEmailRequired},
		{"bad email", Submission{Email: "nope", Message: "hi"}, ErrInvalidEmail},
		{"no message", Submission{Email: "a@b.org"}, ErrMessageRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sub.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSubmitJSON(t *testing.T) {
	store, r := setupTest(t)

	body := `{"name":"Ada","email":"ada@sea.org","subject":"Data","message":"  Need ARGO data  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["status"] != "sent" || resp["id"] == "" {
		t.Errorf("unexpected response %v", resp)
	}

	subs, err := store.List(t.Context(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(subs) != 1 || subs[0].Message != "Need ARGO data" {
		t.Errorf("stored %+v", subs)
	}
}

func TestSubmitForm(t *testing.T) {
	store, r := setupTest(t)

	form := url.Values{"email": {"kai@sea.org"}, "message": {"hello"}}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if n, _ := store.Count(t.Context()); n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestSubmitRejectsInvalid(t *testing.T) {
	store, r := setupTest(t)

	for _, body := range []string{`{"email":"","message":"x"}`, `{"email":"a@b.org"}`, `{not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, w.Code)
		}
	}
	if n, _ := store.Count(t.Context()); n != 0 {
		t.Errorf("invalid submissions stored: %d", n)
	}
}

func TestListNewestFirst(t *testing.T) {
	store, r := setupTest(t)
	ctx := t.Context()

	for _, msg := range []string{"first", "second", "third"} {
		if _, err := store.Create(ctx, Submission{Email: "x@y.org", Message: msg}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact?limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var subs []Submission
	if err := json.NewDecoder(w.Body).Decode(&subs); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(subs) != 2 || subs[0].Message != "third" {
		t.Errorf("unexpected list %+v", subs)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/contact?limit=abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad limit, got %d", w.Code)
	}
}
