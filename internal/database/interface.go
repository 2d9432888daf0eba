package database

import (
	"context"

	"github.com/akyairhashvil/custimer/internal/models"
)

// TemplateStore defines template persistence.
type TemplateStore interface {
	CreateTemplate(ctx context.Context, t models.Template) error
	ListTemplates(ctx context.Context) []models.Template
	UpdateTemplate(ctx context.Context, t models.Template) error
	UpdateTemplateOrders(ctx context.Context, orders []OrderUpdate) error
	DeleteTemplate(ctx context.Context, id string) error
}

// TimerStore defines persistence of the durable timer fields.
type TimerStore interface {
	CreateTimer(ctx context.Context, t models.TimerRecord) error
	ListTimers(ctx context.Context) []TimerWithTemplate
	ListTimersForTemplate(ctx context.Context, templateID string) []models.Timer
	UpdateTimer(ctx context.Context, t models.TimerRecord) error
	UpdateTimerOrders(ctx context.Context, orders []OrderUpdate) error
	DeleteTimer(ctx context.Context, id string) error
}

// Store combines all persistence operations.
//
//go:generate mockgen -destination=dbmock/mock_store.go -package=dbmock github.com/akyairhashvil/custimer/internal/database Store
type Store interface {
	TemplateStore
	TimerStore
}

var _ Store = (*Database)(nil)

// OrderUpdate assigns a display order to one row.
type OrderUpdate struct {
	ID    string
	Order int
}

// TimerWithTemplate pairs a loaded timer with its owning template.
type TimerWithTemplate struct {
	Timer    models.Timer
	Template models.Template
}
