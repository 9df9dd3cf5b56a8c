package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every metric exported on /metrics.
var Registry = prometheus.NewRegistry()

var (
	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "helphub_redis_errors_total",
		Help: "Total number of failed Redis commands",
	}, []string{"command"})

	// AuthFailures counts requests rejected by AuthRequired by reason.
	AuthFailures = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "helphub_auth_failures_total",
		Help: "Total number of requests rejected by the access guard",
	}, []string{"reason"})

	// RateLimited counts requests rejected by RateLimit by resource.
	RateLimited = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "helphub_rate_limited_total",
		Help: "Total number of requests rejected by rate limiting",
	}, []string{"resource"})
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the process-wide Fiber Prometheus middleware, creating
// it on first use. Later calls ignore serviceName.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.NewWithRegistry(Registry, serviceName, "helphub", "http", nil)
		// Runtime collectors; AlreadyRegistered is fine.
		_ = Registry.Register(collectors.NewGoCollector())
		_ = Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
	return prom
}

// MetricsMiddleware returns the request-instrumenting handler of p.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
