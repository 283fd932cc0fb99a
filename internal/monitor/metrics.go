package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors. Each instance
// carries its own registry so tests can construct them freely.
type Metrics struct {
	registry *prometheus.Registry

	connectionsActive prometheus.Gauge
	roomsActive       prometheus.Gauge
	actionsReceived   *prometheus.CounterVec
	gamesStarted      prometheus.Counter
}

// NewMetrics creates and registers the server's collectors
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		connectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Number of open websocket connections",
		}),
		roomsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_active",
			Help:      "Number of live rooms",
		}),
		actionsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_received_total",
			Help:      "Total client actions received, by action name",
		}, []string{"action"}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Total games started",
		}),
	}

	m.registry.MustRegister(
		m.connectionsActive,
		m.roomsActive,
		m.actionsReceived,
		m.gamesStarted,
	)
	return m
}

// Handler serves the metrics scrape endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ConnOpened() {
	m.connectionsActive.Inc()
}

func (m *Metrics) ConnClosed() {
	m.connectionsActive.Dec()
}

// SetActiveRooms records the current live-room count
func (m *Metrics) SetActiveRooms(count int) {
	m.roomsActive.Set(float64(count))
}

// ActionReceived counts one inbound client action
func (m *Metrics) ActionReceived(action string) {
	m.actionsReceived.WithLabelValues(action).Inc()
}

// GameStarted counts one started game
func (m *Metrics) GameStarted() {
	m.gamesStarted.Inc()
}
