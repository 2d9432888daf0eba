package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	prom "github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"github.com/akyairhashvil/custimer/internal/alert"
	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/events"
	"github.com/akyairhashvil/custimer/internal/metrics"
	"github.com/akyairhashvil/custimer/internal/notify"
	"github.com/akyairhashvil/custimer/internal/registry"
	"github.com/akyairhashvil/custimer/internal/report"
	"github.com/akyairhashvil/custimer/internal/ticker"
	"github.com/akyairhashvil/custimer/internal/tui"
	"github.com/akyairhashvil/custimer/internal/util"
)

// CLI holds the global flags. Every flag can also come from a CUSTIMER_*
// variable, which .env files may set.
type CLI struct {
	DataDir     string           `name:"data-dir" env:"CUSTIMER_DATA_DIR" help:"Directory holding the database, log and config file"`
	Config      string           `short:"c" env:"CUSTIMER_CONFIG" help:"Configuration file (default: <data-dir>/config.yaml)"`
	LogLevel    string           `name:"log-level" env:"CUSTIMER_LOG_LEVEL" help:"Log level: debug, info, warn or error"`
	MetricsAddr string           `name:"metrics-addr" env:"CUSTIMER_METRICS_ADDR" help:"Serve Prometheus metrics on this address"`
	NATSURL     string           `name:"nats-url" env:"CUSTIMER_NATS_URL" help:"Publish timer events to this NATS server"`
	NATSSubject string           `name:"nats-subject" env:"CUSTIMER_NATS_SUBJECT" help:"Subject prefix for published events"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Run    RunCmd    `cmd:"" default:"1" help:"Open the timer manager"`
	Export ExportCmd `cmd:"" help:"Write the template and timer roster as a PDF"`
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name(config.AppName),
		kong.Description("Customer-service countdown timers built from reusable templates."),
		kong.UsageOnError(),
		kong.Vars{"version": tui.AppVersion},
	}, opts...)
	return kong.New(cli, opts...)
}

func main() {
	if err := config.LoadEnvFiles(envFiles()...); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// envFiles lists the .env files read at startup, the working directory
// first so it wins over the data dir.
func envFiles() []string {
	return []string{
		config.EnvFileName,
		filepath.Join(util.DataDir(config.AppName), config.EnvFileName),
	}
}

func (c *CLI) dataDir() string {
	if dir := strings.TrimSpace(c.DataDir); dir != "" {
		return dir
	}
	return util.DataDir(config.AppName)
}

// settings loads the config file and applies flag overrides.
func (c *CLI) settings() (*config.Config, error) {
	path := c.Config
	if path == "" {
		path = filepath.Join(c.dataDir(), config.ConfigFileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	}
	if c.MetricsAddr != "" {
		cfg.Metrics.Addr = c.MetricsAddr
	}
	if c.NATSURL != "" {
		cfg.NATS.URL = c.NATSURL
	}
	if c.NATSSubject != "" {
		cfg.NATS.Subject = c.NATSSubject
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// app is the state shared by every command: settings, log file and store.
type app struct {
	cfg     *config.Config
	dataDir string
	log     *slog.Logger
	db      *database.Database
	closers []io.Closer
}

func openApp(ctx context.Context, c *CLI) (*app, error) {
	cfg, err := c.settings()
	if err != nil {
		return nil, err
	}
	dir := c.dataDir()
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	level, err := util.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, logFile, err := util.OpenLogFile(filepath.Join(dir, config.LogFileName), level)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	db, err := database.Open(ctx, filepath.Join(dir, config.DBFileName), database.WithLogger(logger))
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Info("storage ready", "path", db.Path())
	return &app{
		cfg:     cfg,
		dataDir: dir,
		log:     logger,
		db:      db,
		closers: []io.Closer{db, logFile},
	}, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// registries builds and loads both collections over the store.
func (a *app) registries(ctx context.Context, sched ticker.Scheduler, listener events.Listener) (*registry.Templates, *registry.Timers, error) {
	opts := []registry.Option{
		registry.WithLogger(a.log),
		registry.WithListener(listener),
	}
	timers := registry.NewTimers(a.db, sched, opts...)
	templates := registry.NewTemplates(a.db, timers, opts...)
	if err := templates.Load(ctx); err != nil {
		return nil, nil, err
	}
	if err := timers.Load(ctx); err != nil {
		return nil, nil, err
	}
	return templates, timers, nil
}

type RunCmd struct{}

func (r *RunCmd) Run(cli *CLI) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the timer manager needs an interactive terminal; use the export command in scripts")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, cli)
	if err != nil {
		return err
	}
	defer a.Close()

	// Jobs are only registered from Update, so prog is set before any post.
	var prog *tea.Program
	sched, err := ticker.NewGocron(tui.Poster(func(msg tea.Msg) { prog.Send(msg) }), a.log)
	if err != nil {
		return err
	}

	alerts := alert.New(sched, alert.WriterBell(os.Stdout),
		alert.WithRepetitions(a.cfg.Alert.Repetitions),
		alert.WithInterval(a.cfg.Alert.Interval),
		alert.WithLogger(a.log),
	)
	listeners := events.Fanout{alerts}

	var recorder *metrics.Recorder
	if addr := a.cfg.Metrics.Addr; addr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewRecorder(reg)
		listeners = append(listeners, recorder)
		go func() {
			util.LogError(a.log, "metrics endpoint stopped", metrics.Serve(ctx, addr, metrics.NewRouter(reg), a.log))
		}()
	}

	if url := a.cfg.NATS.URL; url != "" {
		nc, err := notify.Connect(url, a.log)
		if err != nil {
			// Publication is optional; the operator keeps working without it.
			a.log.Warn("event publication disabled", "error", err)
		} else {
			defer func() { util.LogError(a.log, "NATS drain", nc.Drain()) }()
			listeners = append(listeners, notify.NewPublisher(nc, a.cfg.NATS.Subject, clockwork.NewRealClock(), a.log))
		}
	}

	templates, timers, err := a.registries(ctx, sched, listeners)
	if err != nil {
		return err
	}
	if recorder != nil {
		recorder.Seed(templates.List(), timers.List())
	}

	tui.SetTheme(a.cfg.Theme)
	model := tui.New(tui.Deps{
		Ctx:       ctx,
		Templates: templates,
		Timers:    timers,
		Alerts:    alerts,
		ReportDir: util.ReportsDir(config.AppName),
		Logger:    a.log,
	})
	prog = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	sched.Start()
	defer func() { util.LogError(a.log, "scheduler shutdown", sched.Shutdown()) }()

	a.log.Info("timer manager started", "templates", len(templates.List()), "timers", len(timers.List()))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	a.log.Info("timer manager stopped")
	return nil
}

type ExportCmd struct {
	Output string `short:"o" help:"PDF file to write (default: the reports directory)"`
}

func (e *ExportCmd) Run(cli *CLI) error {
	ctx := context.Background()
	a, err := openApp(ctx, cli)
	if err != nil {
		return err
	}
	defer a.Close()

	// Nothing runs during an export, so timers never tick.
	templates, timers, err := a.registries(ctx, ticker.NewManual(), events.Nop{})
	if err != nil {
		return err
	}

	out := e.Output
	if out == "" {
		dir := util.ReportsDir(config.AppName)
		if err := util.EnsureDir(dir); err != nil {
			return err
		}
		out = filepath.Join(dir, config.ReportFileName)
	}
	path, err := report.WriteFile(out, report.Roster{
		Templates:   templates.List(),
		Timers:      timers.List(),
		GeneratedAt: clockwork.NewRealClock().Now(),
	})
	if err != nil {
		return err
	}
	a.log.Info("roster exported", "path", path)
	fmt.Println(path)
	return nil
}
