// Package dashboard serves the interactive landing page and the JSON and
// websocket endpoints behind it.
package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/effects"
	"github.com/ziadkadry99/oceanai/internal/facts"
	"github.com/ziadkadry99/oceanai/internal/monitor"
	"github.com/ziadkadry99/oceanai/internal/schedule"
)

// Config holds the page timings.
type Config struct {
	FactRotation    time.Duration
	GalleryRotation time.Duration
	TypingDelay     time.Duration
	ReplyDelay      time.Duration
}

// Deps are the components the dashboard drives.
type Deps struct {
	Monitor   *monitor.Monitor
	Index     *facts.Index
	Rotator   *facts.Rotator
	Carousel  *facts.Carousel
	Particles *effects.ParticleField
	Responder chat.Answerer
	ChatStore *chat.Store
}

// Dashboard provides the landing page, live charts and the chat demo.
type Dashboard struct {
	cfg       Config
	monitor   *monitor.Monitor
	index     *facts.Index
	rotator   *facts.Rotator
	carousel  *facts.Carousel
	particles *effects.ParticleField
	responder chat.Answerer
	chatStore *chat.Store
	tasks     schedule.Group
	log       *logrus.Entry
}

// New creates a new Dashboard.
func New(cfg Config, deps Deps) *Dashboard {
	if cfg.FactRotation <= 0 {
		cfg.FactRotation = 10 * time.Second
	}
	if cfg.GalleryRotation <= 0 {
		cfg.GalleryRotation = 4 * time.Second
	}
	if cfg.TypingDelay <= 0 {
		cfg.TypingDelay = 500 * time.Millisecond
	}
	if cfg.ReplyDelay <= 0 {
		cfg.ReplyDelay = time.Second
	}
	return &Dashboard{
		cfg:       cfg,
		monitor:   deps.Monitor,
		index:     deps.Index,
		rotator:   deps.Rotator,
		carousel:  deps.Carousel,
		particles: deps.Particles,
		responder: deps.Responder,
		chatStore: deps.ChatStore,
		log:       logrus.WithField("component", "dashboard"),
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/charts", d.handleCharts)
	r.Get("/api/charts/{id}.png", d.handleChartPNG)
	r.Get("/api/readings", d.handleReadings)
	r.Get("/api/facts/current", d.handleCurrentFact)
	r.Get("/api/facts/search", d.handleFactSearch)
	r.Get("/api/stats", d.handleStats)
	r.Get("/api/effects/particles", d.handleParticles)
	r.Get("/api/chat/examples", d.handleChatExamples)
	r.Get("/api/chat/sessions/{id}", d.handleChatSession)
	r.Get("/ws/chat", d.handleWebSocket)
}

// Start launches every page timer: the sensor cycle, the fact and gallery
// rotation and the particle field.
func (d *Dashboard) Start() {
	d.tasks.Reset()
	d.monitor.Start()
	if d.particles != nil {
		d.particles.Start()
	}
	d.tasks.Every(d.cfg.FactRotation, func() {
		fact := d.rotator.Next()
		d.log.WithField("fact", fact).Debug("fact rotated")
	})
	d.tasks.Every(d.cfg.GalleryRotation, func() {
		d.carousel.Advance()
	})
	d.log.Info("page timers started")
}

// Stop cancels every timer started by Start.
func (d *Dashboard) Stop() {
	d.tasks.Stop()
	if d.particles != nil {
		d.particles.Stop()
	}
	d.monitor.Stop()
}
