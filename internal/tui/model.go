package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/akyairhashvil/custimer/internal/alert"
	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/registry"
	"github.com/akyairhashvil/custimer/internal/util"
)

// Panes.
const (
	PaneTemplates = 0
	PaneTimers    = 1
)

// Deps are the collaborators the UI drives. All of them are used from
// the bubbletea update loop only.
type Deps struct {
	Ctx       context.Context
	Templates *registry.Templates
	Timers    *registry.Timers
	Alerts    *alert.Alerter
	ReportDir string
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// Model is the root bubbletea model: a template pane and a timer pane.
type Model struct {
	ctx       context.Context
	templates *registry.Templates
	timers    *registry.Timers
	alerts    *alert.Alerter
	reportDir string
	clock     clockwork.Clock
	log       *slog.Logger
	keys      *HandlerRegistry

	focus  int
	cursor [2]int
	offset [2]int
	modal  ModalState
	filter util.SearchQuery
	query  string
	blink  bool

	status      string
	statusErr   bool
	statusTicks int

	width, height int
}

func New(d Deps) Model {
	if d.Ctx == nil {
		d.Ctx = context.Background()
	}
	if d.Clock == nil {
		d.Clock = clockwork.NewRealClock()
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	m := Model{
		ctx:       d.Ctx,
		templates: d.Templates,
		timers:    d.Timers,
		alerts:    d.Alerts,
		reportDir: d.ReportDir,
		clock:     d.Clock,
		log:       d.Logger,
		keys:      NewHandlerRegistry(),
		focus:     config.DefaultFocusPane,
	}
	registerKeys(m.keys)
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CallbackMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		m.clampCursors()
		return m, nil
	case TickMsg:
		m.blink = !m.blink
		if m.statusTicks > 0 {
			m.statusTicks--
			if m.statusTicks == 0 {
				m.status = ""
				m.statusErr = false
			}
		}
		return m, tickCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursors()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.modal != nil {
			return m.updateModal(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		next.clampCursors()
		return next, cmd
	}

	if im, ok := m.modal.(inputModal); ok {
		in := im.Inputs()[im.FocusIndex()]
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
	m.statusTicks = config.StatusTimeoutSeconds
}

func (m *Model) setStatusError(msg string) {
	m.status = msg
	m.statusErr = true
	m.statusTicks = config.StatusTimeoutSeconds
}

func (m Model) visibleTimers() []models.Timer {
	all := m.timers.List()
	if m.filter.Empty() {
		return all
	}
	out := make([]models.Timer, 0, len(all))
	for _, t := range all {
		if m.filter.Matches(t, m.templateName(t.ID)) {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) templateName(timerID string) string {
	tpl, err := m.timers.Template(timerID)
	if err != nil {
		return ""
	}
	return tpl.Name
}

func (m Model) selectedTemplate() (models.Template, bool) {
	list := m.templates.List()
	i := m.cursor[PaneTemplates]
	if i < 0 || i >= len(list) {
		return models.Template{}, false
	}
	return list[i], true
}

func (m Model) selectedTimer() (models.Timer, bool) {
	list := m.visibleTimers()
	i := m.cursor[PaneTimers]
	if i < 0 || i >= len(list) {
		return models.Timer{}, false
	}
	return list[i], true
}

func (m Model) paneLen(pane int) int {
	if pane == PaneTemplates {
		return len(m.templates.List())
	}
	return len(m.visibleTimers())
}

func (m Model) visibleRows() int {
	rows := config.MaxVisibleRows
	if m.height > 0 {
		// header, pane borders and title, footer and status
		if avail := m.height - 9; avail < rows {
			rows = avail
		}
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampCursors keeps each cursor on an existing row and scrolled into view.
func (m *Model) clampCursors() {
	rows := m.visibleRows()
	for pane := range m.cursor {
		n := m.paneLen(pane)
		m.cursor[pane] = util.Clamp(m.cursor[pane], 0, max(n-1, 0))
		if m.cursor[pane] < m.offset[pane] {
			m.offset[pane] = m.cursor[pane]
		}
		if m.cursor[pane] >= m.offset[pane]+rows {
			m.offset[pane] = m.cursor[pane] - rows + 1
		}
		m.offset[pane] = util.Clamp(m.offset[pane], 0, max(n-rows, 0))
	}
}

// acknowledgeSelected clears the completion alert of the selected timer.
func (m *Model) acknowledgeSelected() bool {
	t, ok := m.selectedTimer()
	if !ok || m.alerts == nil {
		return false
	}
	return m.alerts.Acknowledge(t.ID)
}

// cursorTo puts the cursor of pane on the row with id.
func (m *Model) cursorTo(pane int, id string) {
	if pane == PaneTemplates {
		for i, t := range m.templates.List() {
			if t.ID == id {
				m.cursor[pane] = i
			}
		}
		return
	}
	for i, t := range m.visibleTimers() {
		if t.ID == id {
			m.cursor[pane] = i
		}
	}
}
