package ticker

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// Gocron runs each repeating task as a gocron duration job and posts its
// firings onto the event loop.
type Gocron struct {
	scheduler gocron.Scheduler
	post      Poster
	log       *slog.Logger
}

// NewGocron creates a scheduler that delivers callbacks through post.
func NewGocron(post Poster, logger *slog.Logger, opts ...gocron.SchedulerOption) (*Gocron, error) {
	s, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gocron{scheduler: s, post: post, log: logger}, nil
}

// Start begins firing registered jobs.
func (g *Gocron) Start() {
	g.log.Debug("starting tick scheduler")
	g.scheduler.Start()
}

// Shutdown stops the scheduler and waits for running jobs.
func (g *Gocron) Shutdown() error {
	g.log.Debug("stopping tick scheduler")
	return g.scheduler.Shutdown()
}

// Jobs reports how many repeating tasks are registered.
func (g *Gocron) Jobs() int {
	return len(g.scheduler.Jobs())
}

type gocronHandle struct {
	owner     *Gocron
	id        uuid.UUID
	cancelled atomic.Bool
}

// Every registers fn to run on the event loop every interval.
func (g *Gocron) Every(interval time.Duration, fn func()) Handle {
	h := &gocronHandle{owner: g}
	job, err := g.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if h.cancelled.Load() {
				return
			}
			g.post(func() {
				// Cancel runs on the event loop too, so this check
				// cannot race with it.
				if !h.cancelled.Load() {
					fn()
				}
			})
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		g.log.Error("failed to schedule repeating task", "interval", interval, "error", err)
		return nopHandle{}
	}
	h.id = job.ID()
	return h
}

func (h *gocronHandle) Cancel() {
	if h.cancelled.Swap(true) {
		return
	}
	if err := h.owner.scheduler.RemoveJob(h.id); err != nil {
		h.owner.log.Warn("failed to remove repeating task", "job_id", h.id, "error", err)
	}
}
