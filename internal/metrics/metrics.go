// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the registry every oceanai collector is registered with.
var Registry = prometheus.NewRegistry()

var (
	ChartRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oceanai_chart_renders_total",
			Help: "Chart frames rendered, labeled by surface.",
		},
		[]string{"surface"},
	)
	Resamples = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oceanai_resamples_total",
			Help: "Simulated sensor resample cycles.",
		},
	)
	Readings = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "oceanai_current_reading",
			Help: "Latest simulated reading, labeled by kind.",
		},
		[]string{"kind"},
	)
	ChatMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oceanai_chat_messages_total",
			Help: "Chat demo messages, labeled by role.",
		},
		[]string{"role"},
	)
	ContactSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oceanai_contact_submissions_total",
			Help: "Contact form submissions stored.",
		},
	)
	ActiveParticles = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "oceanai_active_particles",
			Help: "Background particles currently alive.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		ChartRenders, Resamples, Readings, ChatMessages, ContactSubmissions, ActiveParticles,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
