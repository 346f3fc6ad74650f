// Package metrics provides Prometheus metrics for the TalentIQ service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every TalentIQ collector.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Roster
	employeesTotal    prometheus.Gauge
	atRiskEmployees   prometheus.Gauge
	keyPersons        prometheus.Gauge
	employeeMutations *prometheus.CounterVec
	idempotentReplays prometheus.Counter

	// Refresh
	refreshesTotal    prometheus.Counter
	refreshesRejected prometheus.Counter
	refreshInProgress prometheus.Gauge
	refreshDuration   prometheus.Histogram

	// Formulas
	decisionsTotal   *prometheus.CounterVec
	skillFallbacks   prometheus.Counter
	simulationsTotal *prometheus.CounterVec
	formulaLatency   *prometheus.HistogramVec

	// Reports
	reportJobs          *prometheus.CounterVec
	reportQueueSize     prometheus.Gauge
	reportQueueCapacity prometheus.Gauge
	reportDuration      prometheus.Histogram
	reportWorkersActive prometheus.Gauge
	reportSchedules     prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
	errorsByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide registry

var globalManager = NewManager(WithPrometheusRegistry(customRegistry)) //nolint:gochecknoglobals // singleton manager

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "talentiq",
		subsystem:        "service",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: buckets,
	})
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: m.histogramBuckets,
	}, labels)
}

func (m *Manager) initializeMetrics() { //nolint:funlen // flat list of collectors
	m.employeesTotal = m.gauge("employees_total", "Number of employees held in the store")
	m.atRiskEmployees = m.gauge("employees_at_risk", "Employees with attrition risk above 50")
	m.keyPersons = m.gauge("key_persons", "Employees flagged as key persons")
	m.employeeMutations = m.counterVec("employee_mutations_total", "Store mutations by operation", "op")
	m.idempotentReplays = m.counter("employee_idempotent_replays_total", "Add requests answered from the idempotency cache")

	m.refreshesTotal = m.counter("refreshes_total", "Completed attrition refreshes")
	m.refreshesRejected = m.counter("refreshes_rejected_total", "Refresh requests rejected because one was running")
	m.refreshInProgress = m.gauge("refresh_in_progress", "1 while an attrition refresh is running")
	m.refreshDuration = m.histogram("refresh_duration_milliseconds", "Attrition refresh duration in milliseconds",
		[]float64{10, 50, 100, 250, 500, 800, 1000, 2500, 5000})

	m.decisionsTotal = m.counterVec("decisions_total", "Decision engine runs by recommended strategy", "strategy")
	m.skillFallbacks = m.counter("decision_skill_fallbacks_total", "Decisions that fell back to the first skill gap")
	m.simulationsTotal = m.counterVec("simulations_total", "Simulator runs by kind", "kind")
	m.formulaLatency = m.histogramVec("formula_latency_milliseconds", "Formula evaluation latency in milliseconds", "formula")

	m.reportJobs = m.counterVec("report_jobs_total", "Report jobs by outcome", "outcome")
	m.reportQueueSize = m.gauge("report_queue_size", "Report jobs waiting in the queue")
	m.reportQueueCapacity = m.gauge("report_queue_capacity", "Report queue capacity")
	m.reportDuration = m.histogram("report_duration_milliseconds", "Report rendering duration in milliseconds", m.histogramBuckets)
	m.reportWorkersActive = m.gauge("report_workers_active", "Report workers currently rendering")
	m.reportSchedules = m.gauge("report_schedules", "Registered report schedules")

	m.httpRequests = m.counterVec("http_requests_total", "HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds", "HTTP request duration in milliseconds", "endpoint", "method", "status_code")

	m.errorsByComponent = m.counterVec("errors_by_component_total", "Errors by component", "component", "error_type")
	m.errorsByEndpoint = m.counterVec("errors_by_endpoint_total", "Errors by endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "Heap memory in use in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
	m.systemGCPauseTime = m.histogram("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000})
}

// UpdateRoster sets the roster gauges.
func UpdateRoster(total, atRisk, keyPersons int) {
	globalManager.employeesTotal.Set(float64(total))
	globalManager.atRiskEmployees.Set(float64(atRisk))
	globalManager.keyPersons.Set(float64(keyPersons))
}

// RecordEmployeeMutation counts a store mutation ("add", "update", "remove").
func RecordEmployeeMutation(op string) {
	globalManager.employeeMutations.WithLabelValues(op).Inc()
}

// RecordIdempotentReplay counts an add answered from the idempotency cache.
func RecordIdempotentReplay() {
	globalManager.idempotentReplays.Inc()
}

// RecordRefreshStarted flips the in-progress gauge on.
func RecordRefreshStarted() {
	globalManager.refreshInProgress.Set(1)
}

// RecordRefreshFinished records a completed refresh.
func RecordRefreshFinished(durationMs float64) {
	globalManager.refreshInProgress.Set(0)
	globalManager.refreshesTotal.Inc()
	globalManager.refreshDuration.Observe(durationMs)
}

// RecordRefreshAborted clears the in-progress gauge without counting a refresh.
func RecordRefreshAborted() {
	globalManager.refreshInProgress.Set(0)
}

// RecordRefreshRejected counts an overlapping refresh request.
func RecordRefreshRejected() {
	globalManager.refreshesRejected.Inc()
}

// RecordDecision counts a decision by its recommended strategy.
func RecordDecision(strategy string, fellBack bool) {
	globalManager.decisionsTotal.WithLabelValues(strategy).Inc()
	if fellBack {
		globalManager.skillFallbacks.Inc()
	}
}

// RecordSimulation counts a simulator run.
func RecordSimulation(kind string) {
	globalManager.simulationsTotal.WithLabelValues(kind).Inc()
}

// RecordFormulaLatency observes formula latency in milliseconds.
func RecordFormulaLatency(formula string, latencyMs float64) {
	globalManager.formulaLatency.WithLabelValues(formula).Observe(latencyMs)
}

// RecordReportJob counts a report job outcome ("enqueued", "rejected", "written", "failed").
func RecordReportJob(outcome string) {
	globalManager.reportJobs.WithLabelValues(outcome).Inc()
}

// UpdateReportQueue sets queue size and capacity.
func UpdateReportQueue(size, capacity int) {
	globalManager.reportQueueSize.Set(float64(size))
	globalManager.reportQueueCapacity.Set(float64(capacity))
}

// RecordReportDuration observes report rendering time in milliseconds.
func RecordReportDuration(durationMs float64) {
	globalManager.reportDuration.Observe(durationMs)
}

// UpdateReportWorkersActive sets the number of busy report workers.
func UpdateReportWorkersActive(n int) {
	globalManager.reportWorkersActive.Set(float64(n))
}

// UpdateReportSchedules sets the number of registered schedules.
func UpdateReportSchedules(n int) {
	globalManager.reportSchedules.Set(float64(n))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method and type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets heap memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the registry every TalentIQ metric lives on.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
