package site

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes mounts the content page routes onto the given router.
func (l *Library) RegisterRoutes(r chi.Router) {
	r.Get("/pages", l.handleList)
	r.Get("/pages/{slug}", l.handlePage)
}

func (l *Library) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l.List())
}

func (l *Library) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, ok := l.Get(slug); !ok {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := l.Render(&buf, slug); err != nil {
		logrus.WithError(err).WithField("slug", slug).Error("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
