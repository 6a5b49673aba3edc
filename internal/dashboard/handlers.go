package dashboard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/oceanai/internal/chart"
	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/effects"
	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/vectordb"
)

// surfaceInfo describes one chart surface.
type surfaceInfo struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

// currentFactResponse is the JSON response for the current fact endpoint.
type currentFactResponse struct {
	Fact       string       `json:"fact"`
	Slide      *facts.Slide `json:"slide,omitempty"`
	SlideIndex int          `json:"slide_index"`
	SlideCount int          `json:"slide_count"`
}

// statResponse is one animated counter.
type statResponse struct {
	effects.Stat
	Display string  `json:"display"`
	Frames  []int64 `json:"frames"`
}

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	Counters      []statResponse `json:"counters"`
	FrameMillis   int64          `json:"frame_ms"`
	TotalSessions int            `json:"total_sessions"`
}

// particlesResponse is the JSON response for the particles endpoint.
type particlesResponse struct {
	Count     int                `json:"count"`
	Particles []effects.Particle `json:"particles"`
}

func (d *Dashboard) handleCharts(w http.ResponseWriter, r *http.Request) {
	board := d.monitor.Board()
	ids := board.IDs()
	if pattern := r.URL.Query().Get("match"); pattern != "" {
		var err error
		ids, err = board.Match(pattern)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	out := make([]surfaceInfo, 0, len(ids))
	for _, id := range ids {
		s, ok := board.Lookup(id)
		if !ok {
			continue
		}
		out = append(out, surfaceInfo{
			ID:     id,
			Label:  s.Label(),
			Width:  s.Width(),
			Height: s.Height(),
			URL:    "/api/charts/" + id + ".png",
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (d *Dashboard) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	s, ok := d.monitor.Board().Lookup(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writePNG(w, s)
}

func writePNG(w http.ResponseWriter, s *chart.Surface) {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (d *Dashboard) handleReadings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.monitor.Snapshot())
}

func (d *Dashboard) handleCurrentFact(w http.ResponseWriter, r *http.Request) {
	resp := currentFactResponse{
		Fact:       d.rotator.Current(),
		SlideCount: d.carousel.Len(),
	}
	if idx, slide, ok := d.carousel.Active(); ok {
		resp.Slide = &slide
		resp.SlideIndex = idx
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dashboard) handleFactSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
		return
	}
	limit := 5
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	source := vectordb.DocumentType(q.Get("source"))
	if source != "" && source != vectordb.DocTypeFact && source != vectordb.DocTypeGallery {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "source must be fact or gallery"})
		return
	}

	results, err := d.index.SearchSource(r.Context(), query, limit, source)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	resp := statsResponse{FrameMillis: effects.DefaultFrameInterval.Milliseconds()}
	for _, st := range effects.Stats {
		resp.Counters = append(resp.Counters, statResponse{
			Stat:    st,
			Display: effects.FormatCount(st.Target) + st.Suffix,
			Frames:  effects.CounterFrames(st.Target, effects.DefaultCounterDuration, effects.DefaultFrameInterval),
		})
	}
	if d.chatStore != nil {
		resp.TotalSessions, _ = d.chatStore.CountSessions(r.Context())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dashboard) handleParticles(w http.ResponseWriter, r *http.Request) {
	resp := particlesResponse{Particles: []effects.Particle{}}
	if d.particles != nil {
		resp.Particles = d.particles.Active()
	}
	resp.Count = len(resp.Particles)
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dashboard) handleChatExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chat.Examples)
}

// transcriptMessage is a stored message with its display clock.
type transcriptMessage struct {
	chat.Message
	Time string `json:"time"`
}

func (d *Dashboard) handleChatSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	ok, err := d.chatStore.SessionExists(ctx, id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	msgs, err := d.chatStore.GetMessages(ctx, id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	out := make([]transcriptMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, transcriptMessage{Message: m, Time: m.Clock()})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
