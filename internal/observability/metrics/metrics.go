package metrics

import "github.com/prometheus/client_golang/prometheus"

// Booking exposes counters/histograms for the availability and booking flows.
type Booking struct {
	slotRequests   *prometheus.CounterVec
	bookingsTotal  *prometheus.CounterVec
	bookingLatency *prometheus.HistogramVec
	eventsTotal    *prometheus.CounterVec
}

func NewBooking(reg prometheus.Registerer) *Booking {
	m := &Booking{
		slotRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonsched",
			Subsystem: "availability",
			Name:      "slot_requests_total",
			Help:      "Total availability listings served",
		}, []string{"status"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonsched",
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		bookingLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salonsched",
			Subsystem: "booking",
			Name:      "commit_latency_seconds",
			Help:      "Latency of the booking transaction",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonsched",
			Subsystem: "outbox",
			Name:      "events_published_total",
			Help:      "Outbox events relayed to Kafka",
		}, []string{"event_type"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.slotRequests, m.bookingsTotal, m.bookingLatency, m.eventsTotal)
	return m
}

func (m *Booking) ObserveSlotRequest(status string) {
	if m == nil {
		return
	}
	m.slotRequests.WithLabelValues(status).Inc()
}

func (m *Booking) ObserveBooking(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
	m.bookingLatency.WithLabelValues(outcome).Observe(seconds)
}

func (m *Booking) EventPublished(eventType string) {
	if m == nil {
		return
	}
	m.eventsTotal.WithLabelValues(eventType).Inc()
}
