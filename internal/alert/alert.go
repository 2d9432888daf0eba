// Package alert rings a bell and highlights a timer when it completes,
// until the operator acknowledges it.
package alert

import (
	"io"
	"log/slog"
	"time"

	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/events"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/ticker"
)

// Bell produces one audible alert.
type Bell func()

// WriterBell rings by writing the BEL control character to w.
func WriterBell(w io.Writer) Bell {
	return func() { _, _ = io.WriteString(w, "\a") }
}

type sequence struct {
	rung   int
	handle ticker.Handle
}

// Alerter reacts to timer completions. The first bell rings at once and
// the rest follow at a fixed interval up to a fixed count.
type Alerter struct {
	events.Nop
	sched       ticker.Scheduler
	bell        Bell
	repetitions int
	interval    time.Duration
	log         *slog.Logger

	ringing     map[string]*sequence
	highlighted map[string]bool
}

type Option func(*Alerter)

func WithRepetitions(n int) Option {
	return func(a *Alerter) {
		if n > 0 {
			a.repetitions = n
		}
	}
}

func WithInterval(d time.Duration) Option {
	return func(a *Alerter) {
		if d > 0 {
			a.interval = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Alerter) { a.log = l }
}

func New(sched ticker.Scheduler, bell Bell, opts ...Option) *Alerter {
	a := &Alerter{
		sched:       sched,
		bell:        bell,
		repetitions: config.AlertRepetitions,
		interval:    config.AlertInterval,
		log:         slog.Default(),
		ringing:     make(map[string]*sequence),
		highlighted: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TimerCompleted starts the alert for t, restarting it if one is already
// in progress.
func (a *Alerter) TimerCompleted(t models.Timer) {
	a.silence(t.ID)
	a.highlighted[t.ID] = true
	a.log.Debug("alert started", "timer_id", t.ID, "repetitions", a.repetitions)

	seq := &sequence{}
	a.ring(seq)
	if seq.rung >= a.repetitions {
		return
	}
	a.ringing[t.ID] = seq
	seq.handle = a.sched.Every(a.interval, func() {
		a.ring(seq)
		if seq.rung >= a.repetitions {
			a.silence(t.ID)
		}
	})
}

// Acknowledge clears the highlight of id and cancels its remaining bells.
// It reports whether there was anything to acknowledge.
func (a *Alerter) Acknowledge(id string) bool {
	had := a.highlighted[id]
	delete(a.highlighted, id)
	if a.silence(id) {
		had = true
	}
	return had
}

// Highlighted reports whether id completed and was not yet acknowledged.
func (a *Alerter) Highlighted(id string) bool {
	return a.highlighted[id]
}

// Ringing reports whether id still has bells to ring.
func (a *Alerter) Ringing(id string) bool {
	_, ok := a.ringing[id]
	return ok
}

func (a *Alerter) ring(seq *sequence) {
	seq.rung++
	if a.bell != nil {
		a.bell()
	}
}

func (a *Alerter) silence(id string) bool {
	seq, ok := a.ringing[id]
	if !ok {
		return false
	}
	if seq.handle != nil {
		seq.handle.Cancel()
	}
	delete(a.ringing, id)
	return true
}
