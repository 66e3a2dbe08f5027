package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one process. Each instance owns its
// registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	ProvinceLoadsTotal    prometheus.Counter
	ProvinceLoadErrors    prometheus.Counter
	ProvinceLookupsTotal  *prometheus.CounterVec
	MapLayerListingsTotal prometheus.Counter
	RequestsTotal         *prometheus.CounterVec
	RequestDurationMs     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ProvinceLoadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clausemap_province_loads_total",
			Help: "Total number of province dataset loads",
		}),
		ProvinceLoadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clausemap_province_load_errors_total",
			Help: "Total number of province dataset loads that failed",
		}),
		ProvinceLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clausemap_province_lookups_total",
			Help: "Province lookups by key, partitioned by result",
		}, []string{"result"}),
		MapLayerListingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clausemap_map_layer_listings_total",
			Help: "Total number of map layer directory listings",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clausemap_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDurationMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clausemap_http_request_duration_ms",
			Help:    "HTTP request duration in milliseconds",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
		}, []string{"method", "route"}),
	}
	m.Registry.MustRegister(
		m.ProvinceLoadsTotal,
		m.ProvinceLoadErrors,
		m.ProvinceLookupsTotal,
		m.MapLayerListingsTotal,
		m.RequestsTotal,
		m.RequestDurationMs,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
