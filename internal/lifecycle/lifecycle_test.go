package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/custimer/internal/models"
)

const fiveThirty = 5*time.Minute + 30*time.Second

func newTimer() models.Timer {
	return models.NewTimer(models.TimerRecord{ID: "t"}, fiveThirty)
}

func TestTransitions(t *testing.T) {
	timer := newTimer()

	require.NoError(t, Start(&timer))
	assert.Equal(t, models.StatusRunning, timer.Status)

	err := Start(&timer)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, Pause(&timer))
	assert.Equal(t, models.StatusPaused, timer.Status)
	assert.ErrorIs(t, Pause(&timer), ErrInvalidTransition)

	require.NoError(t, Start(&timer))
	assert.Equal(t, models.StatusRunning, timer.Status)

	Stop(&timer, fiveThirty)
	assert.Equal(t, models.StatusStopped, timer.Status)
	assert.ErrorIs(t, Pause(&timer), ErrInvalidTransition)
}

func TestTransitionErrorMessage(t *testing.T) {
	timer := newTimer()
	err := Pause(&timer)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "pause", te.Action)
	assert.Equal(t, models.StatusStopped, te.From)
	assert.Equal(t, "cannot pause a stopped timer", err.Error())
}

func TestFullCountdownCompletesOnce(t *testing.T) {
	timer := newTimer()
	require.NoError(t, Start(&timer))

	completions := 0
	for i := 0; i < 330; i++ {
		if Tick(&timer, fiveThirty) {
			completions++
		}
	}

	assert.Equal(t, 1, completions)
	assert.Equal(t, models.StatusStopped, timer.Status)
	assert.Equal(t, 330*time.Second, timer.Remaining)

	// further ticks on a stopped timer do nothing
	assert.False(t, Tick(&timer, fiveThirty))
	assert.Equal(t, 330*time.Second, timer.Remaining)
}

func TestCompletionHappensOnLastSecond(t *testing.T) {
	timer := newTimer()
	require.NoError(t, Start(&timer))
	for i := 0; i < 329; i++ {
		require.False(t, Tick(&timer, fiveThirty))
	}
	assert.Equal(t, time.Second, timer.Remaining)
	assert.True(t, Tick(&timer, fiveThirty))
}

func TestPauseResumeKeepsRemaining(t *testing.T) {
	timer := newTimer()
	require.NoError(t, Start(&timer))
	for i := 0; i < 130; i++ {
		Tick(&timer, fiveThirty)
	}
	require.Equal(t, 200*time.Second, timer.Remaining)

	require.NoError(t, Pause(&timer))
	assert.False(t, Tick(&timer, fiveThirty))
	assert.Equal(t, 200*time.Second, timer.Remaining)

	require.NoError(t, Start(&timer))
	Tick(&timer, fiveThirty)
	assert.Equal(t, 199*time.Second, timer.Remaining)
}

func TestStopUsesGivenDuration(t *testing.T) {
	timer := newTimer()
	require.NoError(t, Start(&timer))
	Tick(&timer, fiveThirty)

	Stop(&timer, 2*time.Minute)
	assert.Equal(t, 2*time.Minute, timer.Remaining)
	assert.Equal(t, models.StatusStopped, timer.Status)
}
