package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{prometheus: newPrometheus()}

func init() {
	prometheus.MustRegister(Observer.prometheus.Requests)
}

// Metrics counts gateway traffic for the /metrics endpoint.
type Metrics struct {
	prometheus Prometheus
}

type Prometheus struct {
	Requests *prometheus.CounterVec
}

func newPrometheus() Prometheus {
	return Prometheus{Requests: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "requests_total",
			Help:      "Requests served, by route and response status.",
		}, []string{"route", "status"}),
	}
}

// IncRequest counts one served request.
func (m *Metrics) IncRequest(route string, status int) {
	m.prometheus.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
