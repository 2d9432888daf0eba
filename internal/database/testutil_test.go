package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/custimer/internal/testutil"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t           *testing.T
	ctx         context.Context
	db          *Database
	templateIDs []string
	timerIDs    []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithTemplate(id string, d time.Duration) *TestDataBuilder {
	b.t.Helper()
	tpl := testutil.NewTemplate(id).WithDuration(d).WithOrder(len(b.templateIDs)).Build()
	if err := b.db.CreateTemplate(b.ctx, tpl); err != nil {
		b.t.Fatalf("CreateTemplate failed: %v", err)
	}
	b.templateIDs = append(b.templateIDs, id)
	return b
}

func (b *TestDataBuilder) WithTimers(templateID string, count int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("%s-timer-%d", templateID, i+1)
		rec := testutil.NewTimer(id, templateID).WithOrder(len(b.timerIDs)).Build()
		if err := b.db.CreateTimer(b.ctx, rec); err != nil {
			b.t.Fatalf("CreateTimer failed: %v", err)
		}
		b.timerIDs = append(b.timerIDs, id)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
