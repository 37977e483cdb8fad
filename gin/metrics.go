package gin

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests      *prometheus.CounterVec
	registrations prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paperchain_http_requests_total",
			Help: "HTTP requests served, by method and status",
		}, []string{"method", "status"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paperchain_registrations_total",
			Help: "Successful paper registrations",
		}),
	}

	if err := registerer.Register(m.requests); err != nil {
		return nil, err
	}
	if err := registerer.Register(m.registrations); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		m.requests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
