package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Длительность HTTP-запросов по маршрутам.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	httpInflight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Число запросов в обработке.",
	})
)

// Metrics снимает длительность и число одновременных HTTP-запросов.
// Метка route — шаблон маршрута chi (без значений параметров), чтобы
// кардинальность метрики не росла с данными.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			httpInflight.Inc()
			defer httpInflight.Dec()

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unknown"
			}

			httpDuration.WithLabelValues(
				r.Method,
				route,
				strconv.Itoa(sw.status),
			).Observe(time.Since(start).Seconds())
		})
	}
}
