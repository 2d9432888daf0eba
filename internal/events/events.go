// Package events carries registry notifications to the UI, alerts,
// metrics and the message bus.
package events

import "github.com/akyairhashvil/custimer/internal/models"

// Listener receives registry notifications on the event loop.
type Listener interface {
	TimerStatusChanged(id string, status models.TimerStatus)
	TimerCompleted(t models.Timer)
	TimerChanged(t models.Timer)
	TemplateChanged(t models.Template)
	TimersReordered(timers []models.Timer)
	TemplatesReordered(templates []models.Template)
}

// Nop ignores every event. Embed it to implement only some methods.
type Nop struct{}

func (Nop) TimerStatusChanged(string, models.TimerStatus) {}
func (Nop) TimerCompleted(models.Timer)                   {}
func (Nop) TimerChanged(models.Timer)                     {}
func (Nop) TemplateChanged(models.Template)               {}
func (Nop) TimersReordered([]models.Timer)                {}
func (Nop) TemplatesReordered([]models.Template)          {}

// Fanout forwards each event to every listener in order.
type Fanout []Listener

func (f Fanout) TimerStatusChanged(id string, status models.TimerStatus) {
	for _, l := range f {
		l.TimerStatusChanged(id, status)
	}
}

func (f Fanout) TimerCompleted(t models.Timer) {
	for _, l := range f {
		l.TimerCompleted(t)
	}
}

func (f Fanout) TimerChanged(t models.Timer) {
	for _, l := range f {
		l.TimerChanged(t)
	}
}

func (f Fanout) TemplateChanged(t models.Template) {
	for _, l := range f {
		l.TemplateChanged(t)
	}
}

func (f Fanout) TimersReordered(timers []models.Timer) {
	for _, l := range f {
		l.TimersReordered(timers)
	}
}

func (f Fanout) TemplatesReordered(templates []models.Template) {
	for _, l := range f {
		l.TemplatesReordered(templates)
	}
}

// Recorder keeps every event it receives. Used in tests.
type Recorder struct {
	Statuses   []StatusChange
	Completed  []models.Timer
	Changed    []models.Timer
	Templates  []models.Template
	TimerOrder [][]models.Timer
	TplOrder   [][]models.Template
}

// StatusChange is one recorded TimerStatusChanged call.
type StatusChange struct {
	ID     string
	Status models.TimerStatus
}

func (r *Recorder) TimerStatusChanged(id string, status models.TimerStatus) {
	r.Statuses = append(r.Statuses, StatusChange{ID: id, Status: status})
}

func (r *Recorder) TimerCompleted(t models.Timer) { r.Completed = append(r.Completed, t) }

func (r *Recorder) TimerChanged(t models.Timer) { r.Changed = append(r.Changed, t) }

func (r *Recorder) TemplateChanged(t models.Template) { r.Templates = append(r.Templates, t) }

func (r *Recorder) TimersReordered(timers []models.Timer) {
	r.TimerOrder = append(r.TimerOrder, timers)
}

func (r *Recorder) TemplatesReordered(templates []models.Template) {
	r.TplOrder = append(r.TplOrder, templates)
}
