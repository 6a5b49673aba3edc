// Package monitor drives the live ocean-sensor charts: it owns the series
// store, resamples it on a fixed period and redraws every chart surface
// right after each update.
package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/oceanai/internal/chart"
	"github.com/ziadkadry99/oceanai/internal/metrics"
	"github.com/ziadkadry99/oceanai/internal/ocean"
	"github.com/ziadkadry99/oceanai/internal/schedule"
)

// Config controls the resample cycle.
type Config struct {
	Interval time.Duration
}

// Snapshot is a consistent view of the store and the current readings.
type Snapshot struct {
	UpdatedAt time.Time                 `json:"updated_at"`
	Current   map[ocean.Kind]string     `json:"current"`
	Values    map[ocean.Kind]float64    `json:"values"`
	Series    map[ocean.Kind][]float64  `json:"series"`
	Surfaces  map[ocean.Kind]string     `json:"surfaces"`
	Bands     map[ocean.Kind]ocean.Band `json:"bands"`
}

// Monitor couples a series store with the renderer that draws it.
type Monitor struct {
	cfg      Config
	mu       sync.RWMutex
	store    *ocean.Store
	sampler  *ocean.Sampler
	renderer *chart.Renderer
	current  ocean.Reading
	updated  time.Time
	tasks    schedule.Group
	log      *logrus.Entry
}

// New creates a monitor. The store is owned by the monitor from now on.
func New(cfg Config, store *ocean.Store, sampler *ocean.Sampler, renderer *chart.Renderer) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	current := store.Latest()
	publishReadings(current)
	return &Monitor{
		cfg:      cfg,
		store:    store,
		sampler:  sampler,
		renderer: renderer,
		current:  current,
		updated:  time.Now().UTC(),
		log:      logrus.WithField("component", "monitor"),
	}
}

// AddSurfaces registers one width x height surface per measurement kind.
func AddSurfaces(board *chart.Board, width, height int) error {
	for _, k := range ocean.Kinds {
		spec, _ := ocean.SpecFor(k)
		if _, err := board.Add(spec.SurfaceID, width, height); err != nil {
			return fmt.Errorf("adding surface for %s: %w", k, err)
		}
	}
	return nil
}

// Board returns the board the charts are drawn into.
func (m *Monitor) Board() *chart.Board { return m.renderer.Board() }

// Renderer returns the renderer used for the live charts.
func (m *Monitor) Renderer() *chart.Renderer { return m.renderer }

// Surface returns the live surface of kind k.
func (m *Monitor) Surface(k ocean.Kind) (*chart.Surface, bool) {
	spec, ok := ocean.SpecFor(k)
	if !ok {
		return nil, false
	}
	return m.Board().Lookup(spec.SurfaceID)
}

// RenderAll redraws every kind into its surface.
func (m *Monitor) RenderAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.renderAllLocked()
}

func (m *Monitor) renderAllLocked() {
	for _, k := range ocean.Kinds {
		spec, _ := ocean.SpecFor(k)
		m.renderer.Render(spec.SurfaceID, spec.Label, m.store.Series(k).Values(), spec.Color)
		if _, ok := m.Board().Lookup(spec.SurfaceID); ok {
			metrics.ChartRenders.WithLabelValues(spec.SurfaceID).Inc()
		}
	}
}

// Tick resamples every series, redraws all charts and refreshes the
// current readings as one update.
func (m *Monitor) Tick() ocean.Reading {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := ocean.Resample(m.store, m.sampler)
	m.renderAllLocked()
	m.current = r
	m.updated = time.Now().UTC()

	metrics.Resamples.Inc()
	publishReadings(r)
	m.log.WithFields(logrus.Fields{
		"temperature": r.Format(ocean.Temperature),
		"salinity":    r.Format(ocean.Salinity),
		"ph":          r.Format(ocean.PH),
		"oxygen":      r.Format(ocean.Oxygen),
	}).Debug("ocean data updated")
	return r
}

// Start draws the initial frames and schedules Tick every interval. A
// stopped monitor may be started again.
func (m *Monitor) Start() {
	m.tasks.Reset()
	m.RenderAll()
	m.tasks.Every(m.cfg.Interval, func() { m.Tick() })
	m.log.WithField("interval", m.cfg.Interval).Info("live updates started")
}

// Stop cancels the resample cycle.
func (m *Monitor) Stop() {
	m.tasks.Stop()
}

// Series returns a copy of the current window of k.
func (m *Monitor) Series(k ocean.Kind) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s := m.store.Series(k); s != nil {
		return s.Values()
	}
	return nil
}

// Current returns the newest reading.
func (m *Monitor) Current() ocean.Reading {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Snapshot returns the store and current readings as one consistent view.
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		UpdatedAt: m.updated,
		Current:   make(map[ocean.Kind]string, len(ocean.Kinds)),
		Values:    make(map[ocean.Kind]float64, len(ocean.Kinds)),
		Series:    make(map[ocean.Kind][]float64, len(ocean.Kinds)),
		Surfaces:  make(map[ocean.Kind]string, len(ocean.Kinds)),
		Bands:     make(map[ocean.Kind]ocean.Band, len(ocean.Kinds)),
	}
	for _, k := range ocean.Kinds {
		spec, _ := ocean.SpecFor(k)
		snap.Current[k] = m.current.Format(k)
		snap.Values[k] = m.current.Value(k)
		snap.Series[k] = m.store.Series(k).Values()
		snap.Surfaces[k] = spec.SurfaceID
		snap.Bands[k] = spec.Band
	}
	return snap
}

func publishReadings(r ocean.Reading) {
	for _, k := range ocean.Kinds {
		metrics.Readings.WithLabelValues(string(k)).Set(r.Value(k))
	}
}
