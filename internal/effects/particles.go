package effects

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/oceanai/internal/metrics"
	"github.com/ziadkadry99/oceanai/internal/schedule"
)

// ParticleConfig controls how particles are spawned and retired.
type ParticleConfig struct {
	Lifetime     time.Duration
	SpawnEvery   time.Duration
	InitialCount int
	InitialGap   time.Duration
}

// DefaultParticleConfig mirrors the timings of the page animation.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Lifetime:     25 * time.Second,
		SpawnEvery:   2 * time.Second,
		InitialCount: 20,
		InitialGap:   time.Second,
	}
}

// Particle is one drifting dot. Left is in viewport widths, Delay and
// Duration are the CSS animation timings in seconds.
type Particle struct {
	ID       int       `json:"id"`
	Left     float64   `json:"left_vw"`
	Delay    float64   `json:"delay_s"`
	Duration float64   `json:"duration_s"`
	Born     time.Time `json:"born"`
}

// ParticleField tracks the live particles.
type ParticleField struct {
	cfg    ParticleConfig
	mu     sync.Mutex
	rng    *rand.Rand
	nextID int
	live   map[int]Particle
	tasks  schedule.Group
	log    *logrus.Entry
}

// NewParticleField creates an empty field drawing from src.
func NewParticleField(cfg ParticleConfig, src rand.Source) *ParticleField {
	def := DefaultParticleConfig()
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = def.Lifetime
	}
	if cfg.SpawnEvery <= 0 {
		cfg.SpawnEvery = def.SpawnEvery
	}
	if cfg.InitialCount < 0 {
		cfg.InitialCount = 0
	}
	return &ParticleField{
		cfg:  cfg,
		rng:  rand.New(src),
		live: make(map[int]Particle),
		log:  logrus.WithField("component", "particles"),
	}
}

// Spawn adds a particle born at now with random placement and timing.
func (f *ParticleField) Spawn(now time.Time) Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := Particle{
		ID:       f.nextID,
		Left:     f.rng.Float64() * 100,
		Delay:    f.rng.Float64() * 20,
		Duration: f.rng.Float64()*10 + 15,
		Born:     now,
	}
	f.live[p.ID] = p
	metrics.ActiveParticles.Set(float64(len(f.live)))
	return p
}

// Remove drops a single particle. Removing an unknown ID is a no-op.
func (f *ParticleField) Remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.live, id)
	metrics.ActiveParticles.Set(float64(len(f.live)))
}

// Expire removes every particle older than the configured lifetime and
// returns how many were removed.
func (f *ParticleField) Expire(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for id, p := range f.live {
		if now.Sub(p.Born) >= f.cfg.Lifetime {
			delete(f.live, id)
			n++
		}
	}
	metrics.ActiveParticles.Set(float64(len(f.live)))
	return n
}

// Active returns the live particles ordered by ID.
func (f *ParticleField) Active() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, 0, len(f.live))
	for _, p := range f.live {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of live particles.
func (f *ParticleField) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// Start schedules the initial burst and the steady spawn cycle. Each
// particle is retired Lifetime after it was spawned.
func (f *ParticleField) Start() {
	f.tasks.Reset()
	for i := 0; i < f.cfg.InitialCount; i++ {
		f.tasks.After(time.Duration(i)*f.cfg.InitialGap, f.spawnScheduled)
	}
	f.tasks.Every(f.cfg.SpawnEvery, f.spawnScheduled)
	f.log.WithFields(logrus.Fields{
		"initial": f.cfg.InitialCount,
		"every":   f.cfg.SpawnEvery,
	}).Debug("particle field started")
}

func (f *ParticleField) spawnScheduled() {
	p := f.Spawn(time.Now())
	f.tasks.After(f.cfg.Lifetime, func() { f.Remove(p.ID) })
}

// Stop cancels spawning and pending retirements.
func (f *ParticleField) Stop() {
	f.tasks.Stop()
}
