package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/oceanai/internal/metrics"
)

// maxBody bounds a contact form request.
const maxBody = 64 << 10

// Handler exposes the inbox over HTTP.
type Handler struct {
	store *Store
	log   *logrus.Entry
}

// NewHandler creates a handler backed by store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store, log: logrus.WithField("component", "contact")}
}

// RegisterRoutes mounts the contact routes onto the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/contact", h.handleSubmit)
	r.Get("/api/contact", h.handleList)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	var sub Submission
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form body"})
			return
		}
		sub = Submission{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Subject: r.PostForm.Get("subject"),
			Message: r.PostForm.Get("message"),
		}
	}
	sub.ID = ""
	sub.RemoteAddr = r.RemoteAddr

	saved, err := h.store.Create(r.Context(), sub)
	if err != nil {
		if errors.Is(err, ErrEmailRequired) || errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrMessageRequired) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		h.log.WithError(err).Error("storing contact message")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not store message"})
		return
	}

	metrics.ContactSubmissions.Inc()
	h.log.WithFields(logrus.Fields{
		"id":      saved.ID,
		"email":   saved.Email,
		"subject": saved.Subject,
	}).Info("contact form submitted")

	writeJSON(w, http.StatusCreated, map[string]string{"status": "sent", "id": saved.ID})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		if n < limit {
			limit = n
		}
	}

	subs, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if subs == nil {
		subs = []Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
