package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters/histograms for the wellness flows. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	logins          *prometheus.CounterVec
	registrations   *prometheus.CounterVec
	appointments    *prometheus.CounterVec
	moodEntries     prometheus.Counter
	remoteRequests  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindease",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by outcome",
		}, []string{"outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindease",
			Subsystem: "auth",
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome",
		}, []string{"outcome"}),
		appointments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindease",
			Subsystem: "booking",
			Name:      "appointments_booked_total",
			Help:      "Confirmed appointments by therapist",
		}, []string{"therapist_id"}),
		moodEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mindease",
			Subsystem: "tracker",
			Name:      "mood_entries_total",
			Help:      "Mood entries recorded",
		}),
		remoteRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindease",
			Subsystem: "placeholder",
			Name:      "requests_total",
			Help:      "Requests to the placeholder API by resource and outcome",
		}, []string{"resource", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mindease",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.logins, m.registrations, m.appointments, m.moodEntries, m.remoteRequests, m.requestDuration)
	return m
}

func (m *Metrics) ObserveLogin(success bool) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome(success)).Inc()
}

func (m *Metrics) ObserveRegistration(success bool) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(outcome(success)).Inc()
}

func (m *Metrics) ObserveAppointmentBooked(therapistID int) {
	if m == nil {
		return
	}
	m.appointments.WithLabelValues(strconv.Itoa(therapistID)).Inc()
}

func (m *Metrics) ObserveMoodEntry() {
	if m == nil {
		return
	}
	m.moodEntries.Inc()
}

func (m *Metrics) ObserveRemoteRequest(resource string, err error) {
	if m == nil {
		return
	}
	m.remoteRequests.WithLabelValues(resource, outcome(err == nil)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
