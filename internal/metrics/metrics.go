package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	EventsIngested   Counter
	AlertsRaised     Counter
	RawWriteFailures Counter

	HttpRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		EventsIngested: NewPrometheusCounter(
			"log_events_ingested_total",
			"Log events counted into a minute bucket",
			[]string{"service", "level"},
		),
		AlertsRaised: NewPrometheusCounter(
			"alerts_raised_total",
			"Ingestions whose bucket count reached the alert threshold",
			[]string{"service", "level"},
		),
		RawWriteFailures: NewPrometheusCounter(
			"raw_write_failures_total",
			"Raw event writes that failed while the ingestion proceeded",
			[]string{"service"},
		),
		HttpRequests: NewPrometheusCounter(
			"http_requests_total",
			"HTTP requests handled by the API",
			[]string{"method", "status"},
		),
	}
}

func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	eventsIngested := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "log_events_ingested_total",
			Help: "Log events counted into a minute bucket",
		}, []string{"service", "level"}),
	}

	alertsRaised := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alerts_raised_total",
			Help: "Ingestions whose bucket count reached the alert threshold",
		}, []string{"service", "level"}),
	}

	rawWriteFailures := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "raw_write_failures_total",
			Help: "Raw event writes that failed while the ingestion proceeded",
		}, []string{"service"}),
	}

	httpRequests := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests handled by the API",
		}, []string{"method", "status"}),
	}

	reg.MustRegister(eventsIngested.counter)
	reg.MustRegister(alertsRaised.counter)
	reg.MustRegister(rawWriteFailures.counter)
	reg.MustRegister(httpRequests.counter)

	return &Counters{
		EventsIngested:   eventsIngested,
		AlertsRaised:     alertsRaised,
		RawWriteFailures: rawWriteFailures,
		HttpRequests:     httpRequests,
	}
}
