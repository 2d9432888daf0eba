// Package metrics exports timer activity as Prometheus metrics.
package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/akyairhashvil/custimer/internal/events"
	"github.com/akyairhashvil/custimer/internal/models"
)

const namespace = "custimer"

// Recorder turns registry notifications into metrics. Its listener
// methods run on the event loop; the metrics themselves are safe to
// scrape concurrently.
type Recorder struct {
	transitions   *prom.CounterVec
	completions   prom.Counter
	templateEdits prom.Counter
	reorders      *prom.CounterVec
	timers        *prom.GaugeVec
	templates     prom.Gauge

	status map[string]models.TimerStatus
}

var _ events.Listener = (*Recorder)(nil)

// NewRecorder constructs the metrics and registers them with reg.
func NewRecorder(reg prom.Registerer) *Recorder {
	r := &Recorder{
		transitions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "timer_transitions_total",
			Help:      "Timer status transitions by target status",
		}, []string{"status"}),
		completions: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "timer_completions_total",
			Help:      "Timers that counted down to zero",
		}),
		templateEdits: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "template_edits_total",
			Help:      "Template name or duration edits",
		}),
		reorders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "reorders_total",
			Help:      "Collection renumberings by collection",
		}, []string{"collection"}),
		timers: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "timers",
			Help:      "Timers currently held by status",
		}, []string{"status"}),
		templates: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "templates",
			Help:      "Templates currently held",
		}),
		status: make(map[string]models.TimerStatus),
	}
	reg.MustRegister(r.transitions, r.completions, r.templateEdits, r.reorders, r.timers, r.templates)
	return r
}

// Seed initialises the gauges from the loaded collections.
func (r *Recorder) Seed(templates []models.Template, timers []models.Timer) {
	r.templates.Set(float64(len(templates)))
	r.reconcile(timers)
}

func (r *Recorder) TimerStatusChanged(id string, status models.TimerStatus) {
	r.transitions.WithLabelValues(string(status)).Inc()
	r.status[id] = status
	r.publishStatus()
}

func (r *Recorder) TimerCompleted(models.Timer) {
	r.completions.Inc()
}

// TimerChanged covers renames, which move no gauge.
func (r *Recorder) TimerChanged(models.Timer) {}

func (r *Recorder) TemplateChanged(models.Template) {
	r.templateEdits.Inc()
}

func (r *Recorder) TimersReordered(timers []models.Timer) {
	r.reorders.WithLabelValues("timers").Inc()
	r.reconcile(timers)
}

func (r *Recorder) TemplatesReordered(templates []models.Template) {
	r.reorders.WithLabelValues("templates").Inc()
	r.templates.Set(float64(len(templates)))
}

// reconcile adopts the full timer list, picking up new and removed timers.
func (r *Recorder) reconcile(timers []models.Timer) {
	next := make(map[string]models.TimerStatus, len(timers))
	for _, t := range timers {
		next[t.ID] = t.Status
	}
	r.status = next
	r.publishStatus()
}

func (r *Recorder) publishStatus() {
	counts := map[models.TimerStatus]int{
		models.StatusStopped: 0,
		models.StatusRunning: 0,
		models.StatusPaused:  0,
	}
	for _, s := range r.status {
		counts[s]++
	}
	for s, n := range counts {
		r.timers.WithLabelValues(string(s)).Set(float64(n))
	}
}
