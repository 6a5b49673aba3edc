package monitor

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/oceanai/internal/chart"
	"github.com/ziadkadry99/oceanai/internal/metrics"
	"github.com/ziadkadry99/oceanai/internal/ocean"
)

func newTestMonitor(t *testing.T, interval time.Duration) *Monitor {
	t.Helper()
	board := chart.NewBoard()
	if err := AddSurfaces(board, 300, 160); err != nil {
		t.Fatalf("AddSurfaces: %v", err)
	}
	return New(Config{Interval: interval}, ocean.NewStore(), ocean.NewSeededSampler(1), chart.NewRenderer(board))
}

func opaque(s *chart.Surface) int {
	n := 0
	pix := s.Snapshot().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestAddSurfaces(t *testing.T) {
	board := chart.NewBoard()
	if err := AddSurfaces(board, 100, 100); err != nil {
		t.Fatalf("AddSurfaces: %v", err)
	}
	for _, id := range []string{"temperatureChart", "salinityChart", "phChart", "oxygenChart"} {
		if _, ok := board.Lookup(id); !ok {
			t.Errorf("surface %s missing", id)
		}
	}
	if err := AddSurfaces(board, 100, 100); err == nil {
		t.Error("expected error when surfaces already exist")
	}
}

func TestRenderAllDrawsEverySurface(t *testing.T) {
	m := newTestMonitor(t, time.Hour)
	m.RenderAll()
	for _, id := range m.Board().IDs() {
		s, _ := m.Board().Lookup(id)
		if opaque(s) == 0 {
			t.Errorf("%s: nothing drawn", id)
		}
	}
	s, _ := m.Board().Lookup("phChart")
	if s.Label() != "pH Level" {
		t.Errorf("phChart label = %q", s.Label())
	}
}

func TestTickSlidesAndRedraws(t *testing.T) {
	m := newTestMonitor(t, time.Hour)
	m.RenderAll()

	before := m.Series(ocean.Temperature)
	surface, _ := m.Board().Lookup("temperatureChart")
	frame := surface.Snapshot().Pix

	r := m.Tick()

	after := m.Series(ocean.Temperature)
	if len(after) != 6 {
		t.Fatalf("window length = %d", len(after))
	}
	for i := 0; i < 5; i++ {
		if after[i] != before[i+1] {
			t.Fatalf("window did not slide: %v -> %v", before, after)
		}
	}
	if after[5] != r.Temperature {
		t.Errorf("newest = %v, want %v", after[5], r.Temperature)
	}
	if m.Current() != r {
		t.Errorf("Current() = %+v, want %+v", m.Current(), r)
	}
	if bytes.Equal(frame, surface.Snapshot().Pix) {
		t.Error("temperature chart not redrawn after tick")
	}
}

func TestSnapshot(t *testing.T) {
	m := newTestMonitor(t, time.Hour)
	snap := m.Snapshot()

	if snap.Current[ocean.Temperature] != "24.7°C" {
		t.Errorf("current temperature = %q, want 24.7°C", snap.Current[ocean.Temperature])
	}
	if snap.Current[ocean.Oxygen] != "6.7 mg/L" {
		t.Errorf("current oxygen = %q", snap.Current[ocean.Oxygen])
	}
	if snap.Surfaces[ocean.PH] != "phChart" {
		t.Errorf("pH surface = %q", snap.Surfaces[ocean.PH])
	}
	if len(snap.Series[ocean.Salinity]) != 6 {
		t.Errorf("salinity window = %v", snap.Series[ocean.Salinity])
	}

	// Snapshots are copies.
	snap.Series[ocean.Salinity][0] = -1
	if m.Series(ocean.Salinity)[0] == -1 {
		t.Error("snapshot aliases the store")
	}
}

func TestStartStop(t *testing.T) {
	m := newTestMonitor(t, 5*time.Millisecond)
	first := m.Current()
	m.Start()

	deadline := time.Now().Add(2 * time.Second)
	for m.Current() == first && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	m.Stop()
	if m.Current() == first {
		t.Fatal("no tick happened")
	}

	stopped := m.Current()
	time.Sleep(20 * time.Millisecond)
	if m.Current() != stopped {
		t.Error("ticks continued after Stop")
	}
}

func TestSurfaceByKind(t *testing.T) {
	m := newTestMonitor(t, time.Hour)
	s, ok := m.Surface(ocean.Oxygen)
	if !ok || s.ID() != "oxygenChart" {
		t.Fatalf("Surface(oxygen) = %v, %v", s, ok)
	}
	if _, ok := m.Surface(ocean.Kind("pressure")); ok {
		t.Error("expected no surface for unknown kind")
	}
	if m.Renderer().Board() != m.Board() {
		t.Error("renderer draws into a different board")
	}
}

func TestRestartAfterStop(t *testing.T) {
	m := newTestMonitor(t, 5*time.Millisecond)
	m.Start()
	m.Stop()

	stopped := m.Current()
	m.Start()
	defer m.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for m.Current() == stopped && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if m.Current() == stopped {
		t.Fatal("no tick after restart")
	}
}

func TestReadingGaugesSetOnNew(t *testing.T) {
	store := ocean.NewStore()
	want := store.Latest()
	newTestMonitorWithStore(t, store)

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	for _, k := range ocean.Kinds {
		line := fmt.Sprintf("oceanai_current_reading{kind=%q} %s", k, strconv.FormatFloat(want.Value(k), 'g', -1, 64))
		if !strings.Contains(body, line) {
			t.Errorf("metrics missing %q", line)
		}
	}
}

func newTestMonitorWithStore(t *testing.T, store *ocean.Store) *Monitor {
	t.Helper()
	board := chart.NewBoard()
	if err := AddSurfaces(board, 300, 160); err != nil {
		t.Fatalf("AddSurfaces: %v", err)
	}
	return New(Config{Interval: time.Hour}, store, ocean.NewSeededSampler(1), chart.NewRenderer(board))
}
