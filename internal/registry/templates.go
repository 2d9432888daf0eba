package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/ordering"
)

func templateOrder(t *models.Template) database.OrderUpdate {
	return database.OrderUpdate{ID: t.ID, Order: t.DisplayOrder}
}

// Templates is the live template collection, kept sorted by display
// order. Edits and deletes propagate to the bound timers.
type Templates struct {
	settings
	store  database.TemplateStore
	timers *Timers
	items  []*models.Template
}

func NewTemplates(store database.TemplateStore, timers *Timers, opts ...Option) *Templates {
	r := &Templates{settings: newSettings(opts), store: store, timers: timers}
	if timers != nil {
		timers.lookup = r.Get
	}
	return r
}

func (r *Templates) Load(ctx context.Context) error {
	rows := r.store.ListTemplates(ctx)
	r.items = make([]*models.Template, 0, len(rows))
	for i := range rows {
		tpl := rows[i]
		r.items = append(r.items, &tpl)
	}
	r.log.Info("templates loaded", "count", len(r.items))

	if ordering.Dense(r.items) {
		return nil
	}
	r.log.Warn("stored template orders were not dense, compacting")
	return r.persistOrders(ctx, ordering.Reindex(r.items))
}

func (r *Templates) List() []models.Template {
	out := make([]models.Template, len(r.items))
	for i, t := range r.items {
		out[i] = *t
	}
	return out
}

func (r *Templates) Get(id string) (models.Template, error) {
	_, t := r.find(id)
	if t == nil {
		return models.Template{}, notFound("template", id)
	}
	return *t, nil
}

// Add inserts a new template at the top of the list and shifts the rest
// down by one.
func (r *Templates) Add(ctx context.Context, name string, duration time.Duration) (models.Template, error) {
	name, err := models.ValidateName("template name", name)
	if err != nil {
		return models.Template{}, err
	}
	if err := models.ValidateDuration(duration); err != nil {
		return models.Template{}, err
	}

	now := r.clock.Now()
	tpl := &models.Template{
		ID:        r.newID(),
		Name:      name,
		Duration:  duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items = append([]*models.Template{tpl}, r.items...)
	changed := ordering.Reindex(r.items)
	r.log.Info("template added", "template_id", tpl.ID, "duration", duration)
	r.listener.TemplatesReordered(r.List())

	if err := r.store.CreateTemplate(ctx, *tpl); err != nil {
		return *tpl, fmt.Errorf("failed to persist template: %w", err)
	}
	return *tpl, r.persistOrders(ctx, changed)
}

// Edit changes a template's name and duration. Stopped timers bound to it
// reset to the new duration; running and paused timers are left alone.
func (r *Templates) Edit(ctx context.Context, id, name string, duration time.Duration) (models.Template, error) {
	name, err := models.ValidateName("template name", name)
	if err != nil {
		return models.Template{}, err
	}
	if err := models.ValidateDuration(duration); err != nil {
		return models.Template{}, err
	}
	_, tpl := r.find(id)
	if tpl == nil {
		return models.Template{}, notFound("template", id)
	}

	tpl.Name = name
	tpl.Duration = duration
	tpl.UpdatedAt = r.clock.Now()
	r.timers.applyTemplate(*tpl)
	r.listener.TemplateChanged(*tpl)

	if err := r.store.UpdateTemplate(ctx, *tpl); err != nil {
		return *tpl, fmt.Errorf("failed to persist template: %w", err)
	}
	return *tpl, nil
}

// BoundTimers lists the timers a Delete of id would remove.
func (r *Templates) BoundTimers(id string) []models.Timer {
	return r.timers.FindByTemplate(id)
}

// Editable reports whether the template may be edited or deleted from the
// UI: none of its timers may be running or paused.
func (r *Templates) Editable(id string) bool {
	return !r.timers.HasActive(id)
}

// Delete removes the template and every timer bound to it, then compacts
// both collections. It returns the removed timers.
func (r *Templates) Delete(ctx context.Context, id string) ([]models.Timer, error) {
	i, tpl := r.find(id)
	if tpl == nil {
		return nil, notFound("template", id)
	}
	r.items = ordering.Remove(r.items, i)
	changedTemplates := ordering.Reindex(r.items)
	removed, changedTimers := r.timers.detachTemplate(id)
	r.log.Info("template deleted", "template_id", id, "timers_removed", len(removed))
	r.listener.TemplatesReordered(r.List())
	r.listener.TimersReordered(r.timers.List())

	if err := r.store.DeleteTemplate(ctx, id); err != nil {
		return removed, fmt.Errorf("failed to delete template: %w", err)
	}
	if err := r.persistOrders(ctx, changedTemplates); err != nil {
		return removed, err
	}
	return removed, r.timers.persistOrders(ctx, changedTimers)
}

// Reorder arranges the templates to follow ids, which must name every
// template exactly once.
func (r *Templates) Reorder(ctx context.Context, ids []string) error {
	arranged, err := ordering.Permutation(r.items, ids, func(t *models.Template) string { return t.ID })
	if err != nil {
		return err
	}
	r.items = arranged
	changed := ordering.Reindex(r.items)
	r.listener.TemplatesReordered(r.List())
	return r.persistOrders(ctx, changed)
}

// Move shifts a template by delta positions, clamped to the list bounds.
func (r *Templates) Move(ctx context.Context, id string, delta int) error {
	i, tpl := r.find(id)
	if tpl == nil {
		return notFound("template", id)
	}
	moved := ordering.Move(r.items, i, i+delta)
	ids := make([]string, len(moved))
	for j, t := range moved {
		ids[j] = t.ID
	}
	return r.Reorder(ctx, ids)
}

func (r *Templates) persistOrders(ctx context.Context, changed []*models.Template) error {
	updates := orderUpdates(changed, templateOrder)
	if len(updates) == 0 {
		return nil
	}
	if err := r.store.UpdateTemplateOrders(ctx, updates); err != nil {
		return fmt.Errorf("failed to persist template order: %w", err)
	}
	return nil
}

func (r *Templates) find(id string) (int, *models.Template) {
	for i, t := range r.items {
		if t.ID == id {
			return i, t
		}
	}
	return -1, nil
}
