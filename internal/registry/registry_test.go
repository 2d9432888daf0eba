package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/events"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/ordering"
	"github.com/akyairhashvil/custimer/internal/testutil"
	"github.com/akyairhashvil/custimer/internal/ticker"
)

const fiveThirty = 5*time.Minute + 30*time.Second

type harness struct {
	ctx       context.Context
	db        *database.Database
	sched     *ticker.Manual
	clock     *clockwork.FakeClock
	events    *events.Recorder
	templates *Templates
	timers    *Timers
	seq       int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "timer_data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := &harness{
		ctx:    ctx,
		db:     db,
		sched:  ticker.NewManual(),
		clock:  clockwork.NewFakeClockAt(testutil.Epoch),
		events: &events.Recorder{},
	}
	h.open()
	return h
}

// open builds fresh registries over the same database, as a restart would.
func (h *harness) open() {
	opts := []Option{
		WithClock(h.clock),
		WithListener(h.events),
		WithIDGenerator(func() string {
			h.seq++
			return fmt.Sprintf("id-%02d", h.seq)
		}),
	}
	h.timers = NewTimers(h.db, h.sched, opts...)
	h.templates = NewTemplates(h.db, h.timers, opts...)
}

func (h *harness) reload(t *testing.T) {
	t.Helper()
	h.open()
	require.NoError(t, h.templates.Load(h.ctx))
	require.NoError(t, h.timers.Load(h.ctx))
}

func (h *harness) addTemplate(t *testing.T, name string, d time.Duration) models.Template {
	t.Helper()
	tpl, err := h.templates.Add(h.ctx, name, d)
	require.NoError(t, err)
	return tpl
}

func (h *harness) activate(t *testing.T, tpl models.Template, customer string) models.Timer {
	t.Helper()
	timer, err := h.timers.Activate(h.ctx, tpl, customer)
	require.NoError(t, err)
	return timer
}

func templateOrders(list []models.Template) []*models.Template {
	out := make([]*models.Template, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out
}

func timerOrders(list []models.Timer) []*models.Timer {
	out := make([]*models.Timer, len(list))
	for i := range list {
		out[i] = &list[i]
	}
	return out
}

func requireDense(t *testing.T, h *harness) {
	t.Helper()
	require.True(t, ordering.Dense(templateOrders(h.templates.List())), "in-memory template orders")
	require.True(t, ordering.Dense(timerOrders(h.timers.List())), "in-memory timer orders")
	require.True(t, ordering.Dense(templateOrders(h.db.ListTemplates(h.ctx))), "stored template orders")

	stored := h.db.ListTimers(h.ctx)
	timers := make([]models.Timer, len(stored))
	for i, row := range stored {
		timers[i] = row.Timer
	}
	require.True(t, ordering.Dense(timerOrders(timers)), "stored timer orders")
}

func timerIDs(list []models.Timer) []string {
	ids := make([]string, len(list))
	for i, t := range list {
		ids[i] = t.ID
	}
	return ids
}

func templateIDs(list []models.Template) []string {
	ids := make([]string, len(list))
	for i, t := range list {
		ids[i] = t.ID
	}
	return ids
}
