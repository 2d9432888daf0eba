// Package ticker provides cancellable repeating tasks. Every callback is
// delivered on the caller's event loop, never concurrently with it.
package ticker

import "time"

// Handle cancels a repeating task. After Cancel returns the task's
// callback never runs again.
type Handle interface {
	Cancel()
}

// Scheduler starts repeating tasks. The first run happens one interval
// after registration.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Poster hands fn to the event loop for execution.
type Poster func(fn func())

type nopHandle struct{}

func (nopHandle) Cancel() {}
