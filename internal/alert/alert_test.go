package alert

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/ticker"
)

func completed(id string) models.Timer {
	return models.Timer{TimerRecord: models.TimerRecord{ID: id}}
}

func newAlerter(rings *int, opts ...Option) (*Alerter, *ticker.Manual) {
	sched := ticker.NewManual()
	return New(sched, func() { *rings++ }, opts...), sched
}

func TestBellRepeatsFixedCount(t *testing.T) {
	rings := 0
	a, sched := newAlerter(&rings)

	a.TimerCompleted(completed("t1"))
	assert.Equal(t, 1, rings, "first bell is immediate")
	assert.True(t, a.Highlighted("t1"))
	assert.True(t, a.Ringing("t1"))

	sched.Advance(10 * time.Second)
	assert.Equal(t, 10, rings)
	assert.False(t, a.Ringing("t1"))
	assert.Equal(t, 0, sched.Active())
	assert.True(t, a.Highlighted("t1"), "highlight outlives the bells")
}

func TestBellTiming(t *testing.T) {
	rings := 0
	a, sched := newAlerter(&rings, WithRepetitions(3), WithInterval(500*time.Millisecond))

	a.TimerCompleted(completed("t1"))
	sched.Advance(499 * time.Millisecond)
	assert.Equal(t, 1, rings)
	sched.Advance(time.Millisecond)
	assert.Equal(t, 2, rings)
	sched.Advance(time.Second)
	assert.Equal(t, 3, rings)
}

func TestAcknowledgeCancelsBellsAndHighlight(t *testing.T) {
	rings := 0
	a, sched := newAlerter(&rings)

	a.TimerCompleted(completed("t1"))
	a.TimerCompleted(completed("t2"))
	sched.Advance(time.Second)
	require.Equal(t, 6, rings)

	assert.True(t, a.Acknowledge("t1"))
	assert.False(t, a.Highlighted("t1"))
	assert.True(t, a.Highlighted("t2"))

	sched.Advance(10 * time.Second)
	assert.Equal(t, 10+3, rings, "t2 finishes, t1 stays silent")
	assert.False(t, a.Acknowledge("t1"))
}

func TestNewCompletionRestartsSequence(t *testing.T) {
	rings := 0
	a, sched := newAlerter(&rings, WithRepetitions(4))

	a.TimerCompleted(completed("t1"))
	sched.Advance(time.Second)
	require.Equal(t, 3, rings)

	a.TimerCompleted(completed("t1"))
	sched.Advance(5 * time.Second)
	assert.Equal(t, 3+4, rings)
	assert.Equal(t, 0, sched.Active())
}

func TestSingleRepetitionNeedsNoSchedule(t *testing.T) {
	rings := 0
	a, sched := newAlerter(&rings, WithRepetitions(1))
	a.TimerCompleted(completed("t1"))
	assert.Equal(t, 1, rings)
	assert.Equal(t, 0, sched.Active())
	assert.True(t, a.Acknowledge("t1"))
}

func TestWriterBell(t *testing.T) {
	var buf bytes.Buffer
	WriterBell(&buf)()
	assert.Equal(t, "\a", buf.String())
}
