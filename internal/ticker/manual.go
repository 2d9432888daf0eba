package ticker

import "time"

// Manual is a deterministic Scheduler driven by Advance. Callbacks run
// synchronously on the goroutine calling Advance.
type Manual struct {
	now  time.Duration
	jobs []*manualJob
}

type manualJob struct {
	interval  time.Duration
	due       time.Duration
	fn        func()
	cancelled bool
}

func (j *manualJob) Cancel() { j.cancelled = true }

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	j := &manualJob{interval: interval, due: m.now + interval, fn: fn}
	m.jobs = append(m.jobs, j)
	return j
}

// Advance moves virtual time forward by d, firing every due job in time
// order. Jobs registered during a callback start counting from the
// callback's instant.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.due += next.interval
		next.fn()
	}
	m.now = target
	m.compact()
}

// Active reports how many jobs are still registered.
func (m *Manual) Active() int {
	n := 0
	for _, j := range m.jobs {
		if !j.cancelled {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(target time.Duration) *manualJob {
	var next *manualJob
	for _, j := range m.jobs {
		if j.cancelled || j.due > target {
			continue
		}
		if next == nil || j.due < next.due {
			next = j
		}
	}
	return next
}

func (m *Manual) compact() {
	live := m.jobs[:0]
	for _, j := range m.jobs {
		if !j.cancelled {
			live = append(live, j)
		}
	}
	m.jobs = live
}
