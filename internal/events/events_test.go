package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akyairhashvil/custimer/internal/models"
)

type completionsOnly struct {
	Nop
	ids []string
}

func (c *completionsOnly) TimerCompleted(t models.Timer) { c.ids = append(c.ids, t.ID) }

func TestFanoutDeliversToAll(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	partial := &completionsOnly{}
	f := Fanout{a, b, partial}

	timer := models.Timer{TimerRecord: models.TimerRecord{ID: "t1"}}
	f.TimerStatusChanged("t1", models.StatusRunning)
	f.TimerCompleted(timer)
	f.TimerChanged(timer)
	f.TemplateChanged(models.Template{ID: "tpl"})
	f.TimersReordered([]models.Timer{timer})
	f.TemplatesReordered(nil)

	for _, r := range []*Recorder{a, b} {
		assert.Equal(t, []StatusChange{{ID: "t1", Status: models.StatusRunning}}, r.Statuses)
		assert.Len(t, r.Completed, 1)
		assert.Len(t, r.Changed, 1)
		assert.Len(t, r.Templates, 1)
		assert.Len(t, r.TimerOrder, 1)
		assert.Len(t, r.TplOrder, 1)
	}
	assert.Equal(t, []string{"t1"}, partial.ids)
}

func TestEmptyFanout(t *testing.T) {
	var f Fanout
	assert.NotPanics(t, func() {
		f.TimerCompleted(models.Timer{})
		f.TemplatesReordered(nil)
	})
}
