package notify

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/testutil"
)

type message struct {
	subject string
	data    []byte
}

type fakeConn struct {
	sent []message
	err  error
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, message{subject: subject, data: data})
	return nil
}

func newPublisher(conn Conn) *Publisher {
	return NewPublisher(conn, "shop", clockwork.NewFakeClockAt(testutil.Epoch), nil)
}

func TestPublishesTimerEvents(t *testing.T) {
	conn := &fakeConn{}
	p := newPublisher(conn)

	p.TimerStatusChanged("t1", models.StatusRunning)
	p.TimerCompleted(models.Timer{
		TimerRecord: models.TimerRecord{ID: "t1", CustomerName: "Alice", TemplateID: "tpl"},
		Status:      models.StatusStopped,
	})

	require.Len(t, conn.sent, 2)
	assert.Equal(t, "shop.timer.status", conn.sent[0].subject)
	assert.Equal(t, "shop.timer.completed", conn.sent[1].subject)

	var ev TimerEvent
	require.NoError(t, json.Unmarshal(conn.sent[1].data, &ev))
	assert.Equal(t, "t1", ev.TimerID)
	assert.Equal(t, "Alice", ev.CustomerName)
	assert.Equal(t, "stopped", ev.Status)
	assert.True(t, ev.Timestamp.Equal(testutil.Epoch))
}

func TestPublishesRename(t *testing.T) {
	conn := &fakeConn{}
	p := newPublisher(conn)

	p.TimerChanged(models.Timer{
		TimerRecord: models.TimerRecord{ID: "t1", CustomerName: "Alicia", TemplateID: "tpl"},
		Status:      models.StatusRunning,
	})

	require.Len(t, conn.sent, 1)
	assert.Equal(t, "shop.timer.changed", conn.sent[0].subject)
	var ev TimerEvent
	require.NoError(t, json.Unmarshal(conn.sent[0].data, &ev))
	assert.Equal(t, "Alicia", ev.CustomerName)
	assert.Equal(t, "running", ev.Status)
}

func TestPublishesTemplateAndOrderEvents(t *testing.T) {
	conn := &fakeConn{}
	p := newPublisher(conn)

	p.TemplateChanged(models.Template{ID: "tpl", Name: "Consult", Duration: 330 * time.Second})
	p.TimersReordered([]models.Timer{{TimerRecord: models.TimerRecord{ID: "b"}}, {TimerRecord: models.TimerRecord{ID: "a"}}})
	p.TemplatesReordered([]models.Template{{ID: "tpl"}})

	require.Len(t, conn.sent, 3)
	var tpl TemplateEvent
	require.NoError(t, json.Unmarshal(conn.sent[0].data, &tpl))
	assert.Equal(t, int64(330), tpl.Duration)

	var order OrderEvent
	require.NoError(t, json.Unmarshal(conn.sent[1].data, &order))
	assert.Equal(t, "shop.timers.reordered", conn.sent[1].subject)
	assert.Equal(t, []string{"b", "a"}, order.IDs)
	assert.Equal(t, "shop.templates.reordered", conn.sent[2].subject)
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	conn := &fakeConn{err: errors.New("nats: connection closed")}
	p := newPublisher(conn)
	assert.NotPanics(t, func() { p.TimerStatusChanged("t1", models.StatusPaused) })
	assert.Empty(t, conn.sent)
}

func TestDefaultPrefix(t *testing.T) {
	conn := &fakeConn{}
	NewPublisher(conn, "", nil, nil).TimerStatusChanged("t1", models.StatusRunning)
	require.Len(t, conn.sent, 1)
	assert.Equal(t, "custimer.timer.status", conn.sent[0].subject)
}
