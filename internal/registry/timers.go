package registry

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/lifecycle"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/ordering"
	"github.com/akyairhashvil/custimer/internal/ticker"
)

type timerEntry struct {
	timer    models.Timer
	template models.Template // owning template as of the last load or edit
	tick     ticker.Handle
}

func (e *timerEntry) Order() int     { return e.timer.DisplayOrder }
func (e *timerEntry) SetOrder(o int) { e.timer.DisplayOrder = o }

func (e *timerEntry) cancelTick() {
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
}

func timerOrder(e *timerEntry) database.OrderUpdate {
	return database.OrderUpdate{ID: e.timer.ID, Order: e.timer.DisplayOrder}
}

// Timers is the live timer collection. Entries are kept sorted by display
// order and the order of entry i is always i.
type Timers struct {
	settings
	store   database.TimerStore
	sched   ticker.Scheduler
	entries []*timerEntry

	// lookup resolves live templates. Set by NewTemplates.
	lookup func(id string) (models.Template, error)
}

func NewTimers(store database.TimerStore, sched ticker.Scheduler, opts ...Option) *Timers {
	return &Timers{settings: newSettings(opts), store: store, sched: sched}
}

// Load replaces the collection with the stored timers. Every loaded
// timer is Stopped at its template's current duration.
func (r *Timers) Load(ctx context.Context) error {
	for _, e := range r.entries {
		e.cancelTick()
	}
	rows := r.store.ListTimers(ctx)
	r.entries = make([]*timerEntry, 0, len(rows))
	for _, row := range rows {
		timer := models.NewTimer(row.Timer.TimerRecord, row.Template.Duration)
		r.entries = append(r.entries, &timerEntry{timer: timer, template: row.Template})
	}
	r.log.Info("timers loaded", "count", len(r.entries))

	if ordering.Dense(r.entries) {
		return nil
	}
	r.log.Warn("stored timer orders were not dense, compacting")
	return r.persistOrders(ctx, ordering.Reindex(r.entries))
}

// List returns a snapshot of all timers in display order.
func (r *Timers) List() []models.Timer {
	out := make([]models.Timer, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.timer
	}
	return out
}

func (r *Timers) Get(id string) (models.Timer, error) {
	_, e := r.find(id)
	if e == nil {
		return models.Timer{}, notFound("timer", id)
	}
	return e.timer, nil
}

// Template returns the template snapshot the timer counts down from.
func (r *Timers) Template(id string) (models.Template, error) {
	_, e := r.find(id)
	if e == nil {
		return models.Template{}, notFound("timer", id)
	}
	return e.template, nil
}

// Activate creates a stopped timer for customer at the bottom of the list.
// tpl is resolved against the template registry, so a deleted template
// fails with ErrNotFound and a stale copy takes the live duration.
// A storage failure is returned with the timer, which stays in memory.
func (r *Timers) Activate(ctx context.Context, tpl models.Template, customer string) (models.Timer, error) {
	name, err := models.ValidateName("customer name", customer)
	if err != nil {
		return models.Timer{}, err
	}
	if r.lookup != nil {
		live, err := r.lookup(tpl.ID)
		if err != nil {
			return models.Timer{}, err
		}
		tpl = live
	}
	rec := models.TimerRecord{
		ID:           r.newID(),
		CustomerName: name,
		TemplateID:   tpl.ID,
		DisplayOrder: len(r.entries),
		CreatedAt:    r.clock.Now(),
	}
	e := &timerEntry{timer: models.NewTimer(rec, tpl.Duration), template: tpl}
	r.entries = append(r.entries, e)
	r.log.Info("timer activated", "timer_id", rec.ID, "template_id", tpl.ID)
	r.listener.TimersReordered(r.List())

	if err := r.store.CreateTimer(ctx, rec); err != nil {
		return e.timer, fmt.Errorf("failed to persist timer: %w", err)
	}
	return e.timer, nil
}

// EditCustomerName renames the timer's customer. It is allowed in every
// status and never touches the countdown.
func (r *Timers) EditCustomerName(ctx context.Context, id, customer string) (models.Timer, error) {
	name, err := models.ValidateName("customer name", customer)
	if err != nil {
		return models.Timer{}, err
	}
	_, e := r.find(id)
	if e == nil {
		return models.Timer{}, notFound("timer", id)
	}
	e.timer.CustomerName = name
	r.listener.TimerChanged(e.timer)
	if err := r.store.UpdateTimer(ctx, e.timer.TimerRecord); err != nil {
		return e.timer, fmt.Errorf("failed to persist customer name: %w", err)
	}
	return e.timer, nil
}

// Delete cancels the timer's tick, removes it and compacts the remaining
// orders.
func (r *Timers) Delete(ctx context.Context, id string) error {
	i, e := r.find(id)
	if e == nil {
		return notFound("timer", id)
	}
	e.cancelTick()
	r.entries = ordering.Remove(r.entries, i)
	changed := ordering.Reindex(r.entries)
	r.log.Info("timer deleted", "timer_id", id)
	r.listener.TimersReordered(r.List())

	if err := r.store.DeleteTimer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete timer: %w", err)
	}
	return r.persistOrders(ctx, changed)
}

// Reorder arranges the timers to follow ids, which must name every timer
// exactly once.
func (r *Timers) Reorder(ctx context.Context, ids []string) error {
	arranged, err := ordering.Permutation(r.entries, ids, func(e *timerEntry) string { return e.timer.ID })
	if err != nil {
		return err
	}
	r.entries = arranged
	changed := ordering.Reindex(r.entries)
	r.listener.TimersReordered(r.List())
	return r.persistOrders(ctx, changed)
}

// Move shifts a timer by delta positions, clamped to the list bounds.
func (r *Timers) Move(ctx context.Context, id string, delta int) error {
	i, e := r.find(id)
	if e == nil {
		return notFound("timer", id)
	}
	moved := ordering.Move(r.entries, i, i+delta)
	ids := make([]string, len(moved))
	for j, m := range moved {
		ids[j] = m.timer.ID
	}
	return r.Reorder(ctx, ids)
}

// FindByTemplate returns the timers bound to templateID in display order.
func (r *Timers) FindByTemplate(templateID string) []models.Timer {
	var out []models.Timer
	for _, e := range r.entries {
		if e.timer.TemplateID == templateID {
			out = append(out, e.timer)
		}
	}
	return out
}

// HasActive reports whether any timer bound to templateID is running or
// paused.
func (r *Timers) HasActive(templateID string) bool {
	for _, e := range r.entries {
		if e.timer.TemplateID == templateID && e.timer.Status.Active() {
			return true
		}
	}
	return false
}

// Start runs a stopped timer or resumes a paused one.
func (r *Timers) Start(id string) error {
	_, e := r.find(id)
	if e == nil {
		return notFound("timer", id)
	}
	if err := lifecycle.Start(&e.timer); err != nil {
		return err
	}
	e.cancelTick()
	e.tick = r.sched.Every(lifecycle.TickInterval, func() { r.tick(e) })
	r.listener.TimerStatusChanged(id, e.timer.Status)
	return nil
}

// Pause freezes a running timer and cancels its tick.
func (r *Timers) Pause(id string) error {
	_, e := r.find(id)
	if e == nil {
		return notFound("timer", id)
	}
	if err := lifecycle.Pause(&e.timer); err != nil {
		return err
	}
	e.cancelTick()
	r.listener.TimerStatusChanged(id, e.timer.Status)
	return nil
}

// Stop cancels the tick and resets the timer to its template duration.
func (r *Timers) Stop(id string) error {
	_, e := r.find(id)
	if e == nil {
		return notFound("timer", id)
	}
	e.cancelTick()
	lifecycle.Stop(&e.timer, e.template.Duration)
	r.listener.TimerStatusChanged(id, e.timer.Status)
	return nil
}

func (r *Timers) tick(e *timerEntry) {
	if !lifecycle.Tick(&e.timer, e.template.Duration) {
		return
	}
	e.cancelTick()
	r.log.Info("timer completed", "timer_id", e.timer.ID, "customer", e.timer.CustomerName)
	r.listener.TimerStatusChanged(e.timer.ID, e.timer.Status)
	r.listener.TimerCompleted(e.timer)
}

// applyTemplate refreshes the template snapshot of every bound timer.
// Stopped timers are reset to the new duration; running and paused ones
// keep counting and pick it up on their next reset.
func (r *Timers) applyTemplate(tpl models.Template) {
	for _, e := range r.entries {
		if e.timer.TemplateID != tpl.ID {
			continue
		}
		e.template = tpl
		if e.timer.Status == models.StatusStopped {
			e.timer.Remaining = tpl.Duration
		}
	}
}

// detachTemplate drops every timer bound to templateID from memory,
// cancelling their ticks, and compacts the rest. The store rows are
// expected to be gone already through the cascade.
func (r *Timers) detachTemplate(templateID string) (removed []models.Timer, changed []*timerEntry) {
	kept := r.entries[:0:0]
	for _, e := range r.entries {
		if e.timer.TemplateID == templateID {
			e.cancelTick()
			removed = append(removed, e.timer)
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, ordering.Reindex(r.entries)
}

func (r *Timers) persistOrders(ctx context.Context, changed []*timerEntry) error {
	updates := orderUpdates(changed, timerOrder)
	if len(updates) == 0 {
		return nil
	}
	if err := r.store.UpdateTimerOrders(ctx, updates); err != nil {
		return fmt.Errorf("failed to persist timer order: %w", err)
	}
	return nil
}

func (r *Timers) find(id string) (int, *timerEntry) {
	for i, e := range r.entries {
		if e.timer.ID == id {
			return i, e
		}
	}
	return -1, nil
}
