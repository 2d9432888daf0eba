// Package notify publishes timer events to NATS so other systems can
// follow the operator's queue.
package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"

	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/events"
	"github.com/akyairhashvil/custimer/internal/models"
)

// Event subject suffixes.
const (
	SubjectStatus             = "timer.status"
	SubjectCompleted          = "timer.completed"
	SubjectTimerChanged       = "timer.changed"
	SubjectTemplateChanged    = "template.changed"
	SubjectTimersReordered    = "timers.reordered"
	SubjectTemplatesReordered = "templates.reordered"
)

// Conn is the part of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

// TimerEvent is the payload for timer status and completion events.
type TimerEvent struct {
	TimerID      string    `json:"timer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	TemplateID   string    `json:"template_id,omitempty"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

// TemplateEvent is the payload for template edits.
type TemplateEvent struct {
	TemplateID string    `json:"template_id"`
	Name       string    `json:"name"`
	Duration   int64     `json:"duration_seconds"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderEvent lists ids in their new display order.
type OrderEvent struct {
	IDs       []string  `json:"ids"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher is an events.Listener that forwards every event as JSON on
// "<prefix>.<suffix>". Publish failures are logged and never reach the
// registries.
type Publisher struct {
	conn   Conn
	prefix string
	clock  clockwork.Clock
	log    *slog.Logger
}

var _ events.Listener = (*Publisher)(nil)

func NewPublisher(conn Conn, prefix string, clock clockwork.Clock, logger *slog.Logger) *Publisher {
	if prefix == "" {
		prefix = config.DefaultNATSSubject
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{conn: conn, prefix: prefix, clock: clock, log: logger}
}

// Connect dials a NATS server with a reconnecting client.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(config.AppName),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("NATS publisher connected", "url", url)
	return nc, nil
}

func (p *Publisher) TimerStatusChanged(id string, status models.TimerStatus) {
	p.publish(SubjectStatus, TimerEvent{
		TimerID:   id,
		Status:    string(status),
		Timestamp: p.clock.Now(),
	})
}

func (p *Publisher) TimerCompleted(t models.Timer) {
	p.publish(SubjectCompleted, TimerEvent{
		TimerID:      t.ID,
		CustomerName: t.CustomerName,
		TemplateID:   t.TemplateID,
		Status:       string(t.Status),
		Timestamp:    p.clock.Now(),
	})
}

func (p *Publisher) TimerChanged(t models.Timer) {
	p.publish(SubjectTimerChanged, TimerEvent{
		TimerID:      t.ID,
		CustomerName: t.CustomerName,
		TemplateID:   t.TemplateID,
		Status:       string(t.Status),
		Timestamp:    p.clock.Now(),
	})
}

func (p *Publisher) TemplateChanged(t models.Template) {
	p.publish(SubjectTemplateChanged, TemplateEvent{
		TemplateID: t.ID,
		Name:       t.Name,
		Duration:   int64(t.Duration / time.Second),
		Timestamp:  p.clock.Now(),
	})
}

func (p *Publisher) TimersReordered(timers []models.Timer) {
	ids := make([]string, len(timers))
	for i, t := range timers {
		ids[i] = t.ID
	}
	p.publish(SubjectTimersReordered, OrderEvent{IDs: ids, Timestamp: p.clock.Now()})
}

func (p *Publisher) TemplatesReordered(templates []models.Template) {
	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
	}
	p.publish(SubjectTemplatesReordered, OrderEvent{IDs: ids, Timestamp: p.clock.Now()})
}

func (p *Publisher) publish(suffix string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("failed to marshal event", "subject", suffix, "error", err)
		return
	}
	subject := p.prefix + "." + suffix
	if err := p.conn.Publish(subject, data); err != nil {
		p.log.Warn("failed to publish event", "subject", subject, "error", err)
		return
	}
	p.log.Debug("published event", "subject", subject)
}
