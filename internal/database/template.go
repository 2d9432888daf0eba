package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/custimer/internal/models"
)

const templateColumns = `id, name, duration_seconds, display_order, created_at, updated_at`

func scanTemplate(row interface{ Scan(...interface{}) error }) (models.Template, error) {
	var t models.Template
	var seconds int64
	if err := row.Scan(&t.ID, &t.Name, &seconds, &t.DisplayOrder, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return t, err
	}
	t.Duration = time.Duration(seconds) * time.Second
	return t, nil
}

func durationSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

func (d *Database) CreateTemplate(ctx context.Context, t models.Template) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO templates (`+templateColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Name, durationSeconds(t.Duration), t.DisplayOrder, t.CreatedAt, t.UpdatedAt)
		return err
	})
	return wrapErr(EntityTemplate, "create", t.ID, err)
}

// ListTemplates returns every template by ascending display order. A read
// failure is logged and yields an empty list so the UI stays usable.
func (d *Database) ListTemplates(ctx context.Context) []models.Template {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `SELECT `+templateColumns+` FROM templates ORDER BY display_order ASC`)
	if err != nil {
		d.log.Error("list templates failed", "error", err)
		return []models.Template{}
	}
	defer rows.Close()

	templates := []models.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			d.log.Error("scan template failed", "error", err)
			return []models.Template{}
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		d.log.Error("list templates failed", "error", err)
		return []models.Template{}
	}
	return templates
}

// UpdateTemplate overwrites name, duration, order and updated_at. An
// unknown ID matches no rows and is not an error.
func (d *Database) UpdateTemplate(ctx context.Context, t models.Template) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE templates
			SET name = ?, duration_seconds = ?, display_order = ?, updated_at = ?
			WHERE id = ?`,
			t.Name, durationSeconds(t.Duration), t.DisplayOrder, t.UpdatedAt, t.ID)
		return err
	})
	return wrapErr(EntityTemplate, "update", t.ID, err)
}

func (d *Database) UpdateTemplateOrders(ctx context.Context, orders []OrderUpdate) error {
	return wrapErr(EntityTemplate, "reorder", "", d.updateOrders(ctx, "UPDATE templates SET display_order = ? WHERE id = ?", orders))
}

// DeleteTemplate removes the template; the foreign key cascade removes
// every timer row that references it.
func (d *Database) DeleteTemplate(ctx context.Context, id string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
		return err
	})
	return wrapErr(EntityTemplate, "delete", id, err)
}

func (d *Database) updateOrders(ctx context.Context, query string, orders []OrderUpdate) error {
	if len(orders) == 0 {
		return nil
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, o := range orders {
			if _, err := stmt.ExecContext(ctx, o.Order, o.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
