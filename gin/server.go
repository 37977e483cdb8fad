package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bobinette/paperchain"
	"github.com/bobinette/paperchain/registry"
)

// EventLister exposes the append-only event log for indexer catch-up.
type EventLister interface {
	List() ([]paperchain.Event, error)
}

// New builds the HTTP surface of the registry. The HTTP layer plays the role
// of the surrounding execution environment: it supplies the caller identity
// and the current height on each request, and maps taxonomy codes to HTTP
// statuses.
func New(service *registry.Service, events EventLister) (http.Handler, error) {
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Content-Type, X-Caller, X-Height")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Page not found"})
	})

	// Ping
	router.GET("/paperchain/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	// Metrics
	promRegistry := prometheus.NewRegistry()
	metrics, err := newMetrics(promRegistry)
	if err != nil {
		return nil, err
	}
	router.Use(metrics.middleware())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	// Papers
	paperHandler := PaperHandler{Registry: service, metrics: metrics}
	paperHandler.RegisterRoutes(router)

	// Registry configuration + events
	registryHandler := RegistryHandler{Registry: service, Events: events}
	registryHandler.RegisterRoutes(router)

	return router, nil
}
