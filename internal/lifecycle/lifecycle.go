// Package lifecycle holds the timer status machine. It is pure in-memory
// arithmetic; scheduling ticks is the caller's job.
//
//	Stopped --start--> Running --pause--> Paused --resume--> Running
//	Running|Paused --stop--> Stopped (remaining reset)
//	Running --tick--> Running (remaining - 1s)
//	Running --tick at 1s--> Stopped (remaining reset, completion)
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/custimer/internal/models"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

var ErrInvalidTransition = errors.New("invalid timer transition")

// TransitionError names the rejected action and the status it came from.
type TransitionError struct {
	Action string
	From   models.TimerStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s timer", e.Action, e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Start runs a stopped timer or resumes a paused one from its frozen
// remaining time.
func Start(t *models.Timer) error {
	if t.Status != models.StatusStopped && t.Status != models.StatusPaused {
		return &TransitionError{Action: "start", From: t.Status}
	}
	t.Status = models.StatusRunning
	return nil
}

// Pause freezes a running timer.
func Pause(t *models.Timer) error {
	if t.Status != models.StatusRunning {
		return &TransitionError{Action: "pause", From: t.Status}
	}
	t.Status = models.StatusPaused
	return nil
}

// Stop resets the timer to the template duration. Stopping a stopped
// timer only re-applies the reset.
func Stop(t *models.Timer, duration time.Duration) {
	t.Status = models.StatusStopped
	t.Remaining = duration
}

// Tick applies one countdown step and reports whether it completed the
// timer. Ticks on a timer that is not running change nothing.
func Tick(t *models.Timer, duration time.Duration) (completed bool) {
	if t.Status != models.StatusRunning {
		return false
	}
	if t.Remaining-TickInterval <= 0 {
		Stop(t, duration)
		return true
	}
	t.Remaining -= TickInterval
	return false
}
