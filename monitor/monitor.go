package monitor

import (
	"expvar"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	PlayersOnline  prometheus.Gauge
	LiveRooms      prometheus.Gauge
	PacketsHandled prometheus.Counter
	RoundsJudged   prometheus.Counter
	HandleLatency  prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		PlayersOnline: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players_online",
			Help:      "Number of connected players",
		}),
		LiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_rooms",
			Help:      "Number of live game rooms",
		}),
		PacketsHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packets_handled_total",
			Help:      "Total number of inbound packets handled",
		}),
		RoundsJudged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_judged_total",
			Help:      "Total number of rounds decided by a czar pick",
		}),
		HandleLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "packet_handle_latency_seconds",
			Help:      "Inbound packet processing latency",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
	}

	prometheus.MustRegister(
		m.PlayersOnline,
		m.LiveRooms,
		m.PacketsHandled,
		m.RoundsJudged,
		m.HandleLatency,
	)

	return m
}

type Monitor struct {
	metrics   *Metrics
	startTime time.Time
}

func NewMonitor(namespace string) *Monitor {
	return &Monitor{
		metrics:   NewMetrics(namespace),
		startTime: time.Now(),
	}
}

func (m *Monitor) StartServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())

	expvar.Publish("uptime", expvar.Func(func() interface{} {
		return time.Since(m.startTime).Seconds()
	}))

	go http.ListenAndServe(addr, nil)
}

func (m *Monitor) IncPlayersOnline() {
	m.metrics.PlayersOnline.Inc()
}

func (m *Monitor) DecPlayersOnline() {
	m.metrics.PlayersOnline.Dec()
}

func (m *Monitor) SetLiveRooms(count int) {
	m.metrics.LiveRooms.Set(float64(count))
}

func (m *Monitor) IncPacketsHandled() {
	m.metrics.PacketsHandled.Inc()
}

func (m *Monitor) IncRoundsJudged() {
	m.metrics.RoundsJudged.Inc()
}

func (m *Monitor) ObserveHandleLatency(duration time.Duration) {
	m.metrics.HandleLatency.Observe(duration.Seconds())
}
