// Package registry holds the live, authoritative template and timer
// collections for a session and writes their durable fields through to
// the store.
//
// Registries are not safe for concurrent use. Every call, tick callbacks
// included, must happen on the single event loop.
package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/events"
)

var ErrNotFound = errors.New("not found")

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

type settings struct {
	clock    clockwork.Clock
	log      *slog.Logger
	listener events.Listener
	newID    func() string
}

// Option configures a registry.
type Option func(*settings)

func WithClock(c clockwork.Clock) Option {
	return func(s *settings) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithListener sets the receiver of registry notifications.
func WithListener(l events.Listener) Option {
	return func(s *settings) { s.listener = l }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *settings) { s.newID = fn }
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:    clockwork.NewRealClock(),
		log:      slog.Default(),
		listener: events.Nop{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func orderUpdates[T any](changed []T, fn func(T) database.OrderUpdate) []database.OrderUpdate {
	if len(changed) == 0 {
		return nil
	}
	out := make([]database.OrderUpdate, 0, len(changed))
	for _, c := range changed {
		out = append(out, fn(c))
	}
	return out
}
