package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/testutil"
)

func TestAddTemplateInsertsAtTop(t *testing.T) {
	h := newHarness(t)
	a := h.addTemplate(t, "Haircut", 30*time.Minute)
	b := h.addTemplate(t, "Wash", 5*time.Minute)
	c := h.addTemplate(t, "Dry", 90*time.Second)

	list := h.templates.List()
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, templateIDs(list))
	for i, tpl := range list {
		assert.Equal(t, i, tpl.DisplayOrder)
	}
	requireDense(t, h)

	h.reload(t)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, templateIDs(h.templates.List()))
	assert.Len(t, h.events.TplOrder, 3)
}

func TestAddTemplateValidation(t *testing.T) {
	h := newHarness(t)
	h.addTemplate(t, "Existing", time.Minute)

	cases := []struct {
		name     string
		tplName  string
		duration time.Duration
		field    string
	}{
		{"empty name", "   ", time.Minute, "template name"},
		{"zero duration", "X", 0, "duration"},
		{"over max", "X", 100 * time.Minute, "duration"},
		{"fractional", "X", 1500 * time.Millisecond, "duration"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.templates.Add(h.ctx, tc.tplName, tc.duration)
			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Len(t, h.templates.List(), 1)
		})
	}

	tpl, err := h.templates.Add(h.ctx, "  Trimmed  ", models.MaxDuration)
	require.NoError(t, err)
	assert.Equal(t, "Trimmed", tpl.Name)
}

func TestEditTemplatePropagatesOnlyToStoppedTimers(t *testing.T) {
	h := newHarness(t)
	tpl := h.addTemplate(t, "Consult", fiveThirty)
	idle := h.activate(t, tpl, "Alice")
	busy := h.activate(t, tpl, "Bob")

	require.NoError(t, h.timers.Start(busy.ID))
	h.sched.Advance(10 * time.Second)

	h.clock.Advance(time.Hour)
	edited, err := h.templates.Edit(h.ctx, tpl.ID, "Consult (short)", 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, testutil.Epoch.Add(time.Hour), edited.UpdatedAt)

	got, _ := h.timers.Get(idle.ID)
	assert.Equal(t, 2*time.Minute, got.Remaining)
	got, _ = h.timers.Get(busy.ID)
	assert.Equal(t, 320*time.Second, got.Remaining)
	assert.Equal(t, models.StatusRunning, got.Status)

	// the running timer resets to the new duration when it completes
	h.sched.Advance(320 * time.Second)
	got, _ = h.timers.Get(busy.ID)
	assert.Equal(t, models.StatusStopped, got.Status)
	assert.Equal(t, 2*time.Minute, got.Remaining)
	require.Len(t, h.events.Completed, 1)

	require.Len(t, h.events.Templates, 1)
	assert.Equal(t, "Consult (short)", h.events.Templates[0].Name)

	stored := h.db.ListTemplates(h.ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, 2*time.Minute, stored[0].Duration)
}

func TestEditTemplateNotFound(t *testing.T) {
	h := newHarness(t)
	_, err := h.templates.Edit(h.ctx, "missing", "x", time.Minute)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTemplateCascadesAndCompacts(t *testing.T) {
	h := newHarness(t)
	a := h.addTemplate(t, "A", time.Minute)
	b := h.addTemplate(t, "B", 2*time.Minute)
	c := h.addTemplate(t, "C", 3*time.Minute)

	a1 := h.activate(t, a, "a1")
	b1 := h.activate(t, b, "b1")
	a2 := h.activate(t, a, "a2")
	b2 := h.activate(t, b, "b2")
	a3 := h.activate(t, a, "a3")
	require.NoError(t, h.timers.Start(a2.ID))

	bound := h.templates.BoundTimers(a.ID)
	assert.Equal(t, []string{a1.ID, a2.ID, a3.ID}, timerIDs(bound))

	removed, err := h.templates.Delete(h.ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 3)
	assert.Equal(t, 0, h.sched.Active())

	assert.Equal(t, []string{c.ID, b.ID}, templateIDs(h.templates.List()))
	assert.Equal(t, []string{b1.ID, b2.ID}, timerIDs(h.timers.List()))
	requireDense(t, h)

	h.reload(t)
	assert.Equal(t, []string{b1.ID, b2.ID}, timerIDs(h.timers.List()))
	assert.Empty(t, h.db.ListTimersForTemplate(h.ctx, a.ID))
}

func TestDeleteTemplateWithoutTimers(t *testing.T) {
	h := newHarness(t)
	a := h.addTemplate(t, "A", time.Minute)
	b := h.addTemplate(t, "B", time.Minute)
	h.activate(t, b, "kept")

	assert.Empty(t, h.templates.BoundTimers(a.ID))
	removed, err := h.templates.Delete(h.ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Len(t, h.timers.List(), 1)
	requireDense(t, h)

	_, err = h.templates.Delete(h.ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderTemplates(t *testing.T) {
	h := newHarness(t)
	a := h.addTemplate(t, "A", time.Minute)
	b := h.addTemplate(t, "B", time.Minute)
	c := h.addTemplate(t, "C", time.Minute)

	require.NoError(t, h.templates.Reorder(h.ctx, []string{a.ID, c.ID, b.ID}))
	assert.Equal(t, []string{a.ID, c.ID, b.ID}, templateIDs(h.templates.List()))
	requireDense(t, h)

	assert.Error(t, h.templates.Reorder(h.ctx, []string{a.ID, c.ID}))
	assert.Error(t, h.templates.Reorder(h.ctx, []string{a.ID, a.ID, b.ID}))
	assert.Error(t, h.templates.Reorder(h.ctx, []string{a.ID, c.ID, "zzz"}))
	assert.Equal(t, []string{a.ID, c.ID, b.ID}, templateIDs(h.templates.List()))

	require.NoError(t, h.templates.Move(h.ctx, a.ID, 5))
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, templateIDs(h.templates.List()))
	require.NoError(t, h.templates.Move(h.ctx, b.ID, -1))
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, templateIDs(h.templates.List()))

	h.reload(t)
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, templateIDs(h.templates.List()))
}

func TestEditableWhileTimersActive(t *testing.T) {
	h := newHarness(t)
	tpl := h.addTemplate(t, "A", time.Minute)
	timer := h.activate(t, tpl, "x")
	assert.True(t, h.templates.Editable(tpl.ID))

	require.NoError(t, h.timers.Start(timer.ID))
	assert.False(t, h.templates.Editable(tpl.ID))
	require.NoError(t, h.timers.Pause(timer.ID))
	assert.False(t, h.templates.Editable(tpl.ID))
	require.NoError(t, h.timers.Stop(timer.ID))
	assert.True(t, h.templates.Editable(tpl.ID))
}
