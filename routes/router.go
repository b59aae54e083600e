package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"upaya-be/controllers"
	"upaya-be/middlewares"
	"upaya-be/models"
	"upaya-be/store"
)

// Options carries what the router needs to wire every route.
type Options struct {
	Store          *store.IssueStore
	Reports        controllers.ReportSubmitter
	ReportLimiter  gin.HandlerFunc
	AllowedOrigins []string
	// Registry defaults to a fresh prometheus registry.
	Registry *prometheus.Registry
}

// Setup builds the gin engine with middleware and all routes.
func Setup(opts Options) *gin.Engine {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := middlewares.NewMetrics(reg)
	registerIssueGauge(reg, opts.Store)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), metrics.Handler())
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	IssueRoutes(api, opts.Store)
	MetadataRoutes(api, opts.Store)
	ReportRoutes(api, opts.Reports, opts.ReportLimiter)

	return r
}

// registerIssueGauge exposes the stored issue counts. The store never
// changes, so the values are set once.
func registerIssueGauge(reg prometheus.Registerer, s *store.IssueStore) {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "upaya",
		Name:      "issues",
		Help:      "Stored issues by status",
	}, []string{"status"})
	reg.MustRegister(gauge)

	stats := s.Stats()
	gauge.WithLabelValues(string(models.Pending)).Set(float64(stats.Pending))
	gauge.WithLabelValues(string(models.Review)).Set(float64(stats.InReview))
	gauge.WithLabelValues(string(models.Resolved)).Set(float64(stats.Resolved))
}
