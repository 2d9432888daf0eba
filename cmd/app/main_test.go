package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/term"

	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/testutil"
)

func parse(t *testing.T, args ...string) (*CLI, string) {
	t.Helper()
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		t.Fatalf("newParser failed: %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return &cli, ctx.Command()
}

func TestDefaultCommandIsRun(t *testing.T) {
	_, cmd := parse(t)
	if cmd != "run" {
		t.Fatalf("expected run, got %q", cmd)
	}
}

func TestFlagsFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CUSTIMER_DATA_DIR", dir)
	t.Setenv("CUSTIMER_NATS_SUBJECT", "desk1")
	cli, cmd := parse(t, "export", "-o", "out.pdf")
	if cmd != "export" {
		t.Fatalf("expected export, got %q", cmd)
	}
	if cli.DataDir != dir || cli.NATSSubject != "desk1" {
		t.Fatalf("unexpected env binding: %+v", cli)
	}
	if cli.Export.Output != "out.pdf" {
		t.Fatalf("expected output flag, got %q", cli.Export.Output)
	}
}

func TestSettingsFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.ConfigFileName)
	body := "log_level: warn\nalert:\n  repetitions: 3\nmetrics:\n  addr: \":9000\"\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cli, _ := parse(t, "--data-dir", dir, "--log-level", "DEBUG", "--nats-url", "nats://localhost:4222")
	cfg, err := cli.settings()
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected flag log level, got %q", cfg.LogLevel)
	}
	if cfg.Alert.Repetitions != 3 || cfg.Metrics.Addr != ":9000" {
		t.Fatalf("expected file values kept, got %+v", cfg)
	}
	if cfg.NATS.URL != "nats://localhost:4222" || cfg.NATS.Subject != config.DefaultNATSSubject {
		t.Fatalf("unexpected NATS settings %+v", cfg.NATS)
	}
}

func TestSettingsRejectsBadLevel(t *testing.T) {
	cli, _ := parse(t, "--data-dir", t.TempDir(), "--log-level", "loud")
	if _, err := cli.settings(); err == nil {
		t.Fatalf("expected invalid log level to fail")
	}
}

func TestEnvFilesLoadedBeforeParsing(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("CUSTIMER_METRICS_ADDR=:9100\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("CUSTIMER_METRICS_ADDR", "")
	os.Unsetenv("CUSTIMER_METRICS_ADDR")
	if err := config.LoadEnvFiles(filepath.Join(dir, "missing.env"), envPath); err != nil {
		t.Fatalf("LoadEnvFiles failed: %v", err)
	}
	cli, _ := parse(t)
	if cli.MetricsAddr != ":9100" {
		t.Fatalf("expected metrics addr from .env, got %q", cli.MetricsAddr)
	}
}

func TestExportWritesRoster(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(dir, config.DBFileName))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	tpl := testutil.NewTemplate("tpl-1").WithName("Refund").WithDuration(5 * time.Minute).Build()
	if err := db.CreateTemplate(ctx, tpl); err != nil {
		t.Fatalf("CreateTemplate failed: %v", err)
	}
	if err := db.CreateTimer(ctx, testutil.NewTimer("tm-1", tpl.ID).WithCustomer("Kim").Build()); err != nil {
		t.Fatalf("CreateTimer failed: %v", err)
	}
	_ = db.Close()

	out := filepath.Join(dir, "roster.pdf")
	cli, _ := parse(t, "--data-dir", dir, "export", "-o", out)
	if err := cli.Export.Run(cli); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected roster file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty roster")
	}
	if _, err := os.Stat(filepath.Join(dir, config.LogFileName)); err != nil {
		t.Fatalf("expected log file in data dir: %v", err)
	}
}

func TestRunNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	cli, _ := parse(t, "--data-dir", t.TempDir())
	if err := cli.Run.Run(cli); err == nil {
		t.Fatalf("expected run to refuse a non-terminal stdout")
	}
}
