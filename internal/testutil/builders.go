package testutil

import (
	"time"

	"github.com/akyairhashvil/custimer/internal/models"
)

// Epoch is the fixed instant builders stamp on records.
var Epoch = time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC)

// TemplateBuilder provides fluent API for creating test templates.
type TemplateBuilder struct {
	template models.Template
}

func NewTemplate(id string) *TemplateBuilder {
	return &TemplateBuilder{
		template: models.Template{
			ID:        id,
			Name:      "Template " + id,
			Duration:  5*time.Minute + 30*time.Second,
			CreatedAt: Epoch,
			UpdatedAt: Epoch,
		},
	}
}

func (b *TemplateBuilder) WithName(name string) *TemplateBuilder {
	b.template.Name = name
	return b
}

func (b *TemplateBuilder) WithDuration(d time.Duration) *TemplateBuilder {
	b.template.Duration = d
	return b
}

func (b *TemplateBuilder) WithOrder(order int) *TemplateBuilder {
	b.template.DisplayOrder = order
	return b
}

func (b *TemplateBuilder) Build() models.Template {
	return b.template
}

// TimerBuilder provides fluent API for creating persisted timer records.
type TimerBuilder struct {
	timer models.TimerRecord
}

func NewTimer(id, templateID string) *TimerBuilder {
	return &TimerBuilder{
		timer: models.TimerRecord{
			ID:           id,
			CustomerName: "Customer " + id,
			TemplateID:   templateID,
			CreatedAt:    Epoch,
		},
	}
}

func (b *TimerBuilder) WithCustomer(name string) *TimerBuilder {
	b.timer.CustomerName = name
	return b
}

func (b *TimerBuilder) WithOrder(order int) *TimerBuilder {
	b.timer.DisplayOrder = order
	return b
}

func (b *TimerBuilder) Build() models.TimerRecord {
	return b.timer
}
