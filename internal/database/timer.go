package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/custimer/internal/models"
)

const timerJoinQuery = `
	SELECT
		t.id, t.customer_name, t.template_id, t.display_order, t.created_at,
		tp.id, tp.name, tp.duration_seconds, tp.display_order, tp.created_at, tp.updated_at
	FROM timers t
	JOIN templates tp ON t.template_id = tp.id`

func (d *Database) CreateTimer(ctx context.Context, t models.TimerRecord) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO timers (id, customer_name, template_id, display_order, created_at) VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.CustomerName, t.TemplateID, t.DisplayOrder, t.CreatedAt)
		return err
	})
	return wrapErr(EntityTimer, "create", t.ID, err)
}

// ListTimers returns every timer with its template, ordered by the timer
// display order. Loaded timers are always stopped at the template's
// current duration.
func (d *Database) ListTimers(ctx context.Context) []TimerWithTemplate {
	out, err := d.queryTimers(ctx, timerJoinQuery+` ORDER BY t.display_order ASC`)
	if err != nil {
		d.log.Error("list timers failed", "error", err)
		return []TimerWithTemplate{}
	}
	return out
}

func (d *Database) ListTimersForTemplate(ctx context.Context, templateID string) []models.Timer {
	rows, err := d.queryTimers(ctx, timerJoinQuery+` WHERE t.template_id = ? ORDER BY t.display_order ASC`, templateID)
	if err != nil {
		d.log.Error("list timers for template failed", "template_id", templateID, "error", err)
		return []models.Timer{}
	}
	timers := make([]models.Timer, 0, len(rows))
	for _, r := range rows {
		timers = append(timers, r.Timer)
	}
	return timers
}

func (d *Database) queryTimers(ctx context.Context, query string, args ...interface{}) ([]TimerWithTemplate, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TimerWithTemplate{}
	for rows.Next() {
		var rec models.TimerRecord
		var tpl models.Template
		var seconds int64
		if err := rows.Scan(
			&rec.ID, &rec.CustomerName, &rec.TemplateID, &rec.DisplayOrder, &rec.CreatedAt,
			&tpl.ID, &tpl.Name, &seconds, &tpl.DisplayOrder, &tpl.CreatedAt, &tpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tpl.Duration = time.Duration(seconds) * time.Second
		out = append(out, TimerWithTemplate{
			Timer:    models.NewTimer(rec, tpl.Duration),
			Template: tpl,
		})
	}
	return out, rows.Err()
}

// UpdateTimer writes the customer name and display order only.
func (d *Database) UpdateTimer(ctx context.Context, t models.TimerRecord) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "UPDATE timers SET customer_name = ?, display_order = ? WHERE id = ?",
			t.CustomerName, t.DisplayOrder, t.ID)
		return err
	})
	return wrapErr(EntityTimer, "update", t.ID, err)
}

func (d *Database) UpdateTimerOrders(ctx context.Context, orders []OrderUpdate) error {
	return wrapErr(EntityTimer, "reorder", "", d.updateOrders(ctx, "UPDATE timers SET display_order = ? WHERE id = ?", orders))
}

func (d *Database) DeleteTimer(ctx context.Context, id string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM timers WHERE id = ?", id)
		return err
	})
	return wrapErr(EntityTimer, "delete", id, err)
}
