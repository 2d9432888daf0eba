package models

import "time"

// TimerStatus enumerates the runtime states of a timer instance.
type TimerStatus string

const (
	StatusStopped TimerStatus = "stopped"
	StatusRunning TimerStatus = "running"
	StatusPaused  TimerStatus = "paused"
)

// Active reports whether the status holds a countdown in progress.
func (s TimerStatus) Active() bool {
	return s == StatusRunning || s == StatusPaused
}

// Template is a named duration preset.
type Template struct {
	ID           string
	Name         string
	Duration     time.Duration // whole seconds, 0 < d <= MaxDuration
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t *Template) Order() int     { return t.DisplayOrder }
func (t *Template) SetOrder(o int) { t.DisplayOrder = o }

// TimerRecord is the persisted subset of a timer instance.
type TimerRecord struct {
	ID           string
	CustomerName string
	TemplateID   string
	DisplayOrder int
	CreatedAt    time.Time
}

// Timer is a live timer instance: the persisted record plus the
// countdown overlay. Remaining and Status are never written to storage.
type Timer struct {
	TimerRecord
	Remaining time.Duration
	Status    TimerStatus
}

// NewTimer builds a stopped timer at the full template duration.
func NewTimer(rec TimerRecord, duration time.Duration) Timer {
	return Timer{
		TimerRecord: rec,
		Remaining:   duration,
		Status:      StatusStopped,
	}
}

func (t *Timer) Order() int     { return t.DisplayOrder }
func (t *Timer) SetOrder(o int) { t.DisplayOrder = o }
