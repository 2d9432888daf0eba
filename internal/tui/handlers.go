package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/database"
	"github.com/akyairhashvil/custimer/internal/lifecycle"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/report"
	"github.com/akyairhashvil/custimer/internal/util"
)

var (
	templatePane = []int{PaneTemplates}
	timerPane    = []int{PaneTimers}
)

func registerKeys(r *HandlerRegistry) {
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Quit", Priority: 100})
	r.Register(KeyBinding{Key: "tab", Handler: handleFocus, Description: "Pane", Priority: 90})
	r.Register(KeyBinding{Key: "up", Handler: handleCursor, Priority: 80})
	r.Register(KeyBinding{Key: "k", Handler: handleCursor, Priority: 80})
	r.Register(KeyBinding{Key: "down", Handler: handleCursor, Priority: 80})
	r.Register(KeyBinding{Key: "j", Handler: handleCursor, Priority: 80})
	r.Register(KeyBinding{Key: "K", Handler: handleMove, Description: "Move up", Priority: 70})
	r.Register(KeyBinding{Key: "J", Handler: handleMove, Description: "Move down", Priority: 70})
	r.Register(KeyBinding{Key: "p", Handler: handleExport, Description: "PDF", Priority: 10})

	r.Register(KeyBinding{Key: "a", Handler: handleTemplateAdd, Description: "Add", Panes: templatePane, Priority: 60})
	r.Register(KeyBinding{Key: "e", Handler: handleTemplateEdit, Description: "Edit", Panes: templatePane, Priority: 60})
	r.Register(KeyBinding{Key: "d", Handler: handleTemplateDelete, Description: "Delete", Panes: templatePane, Priority: 60})
	r.Register(KeyBinding{Key: "enter", Handler: handleActivate, Description: "Activate", Panes: templatePane, Priority: 60})

	r.Register(KeyBinding{Key: " ", Handler: handleStartPause, Description: "Start/Pause", Panes: timerPane, Priority: 60})
	r.Register(KeyBinding{Key: "s", Handler: handleStop, Description: "Stop", Panes: timerPane, Priority: 60})
	r.Register(KeyBinding{Key: "e", Handler: handleTimerEdit, Description: "Rename", Panes: timerPane, Priority: 60})
	r.Register(KeyBinding{Key: "d", Handler: handleTimerDelete, Description: "Delete", Panes: timerPane, Priority: 60})
	r.Register(KeyBinding{Key: "enter", Handler: handleAcknowledge, Description: "Ack", Panes: timerPane, Priority: 60})
	r.Register(KeyBinding{Key: "/", Handler: handleFilter, Description: "Filter", Panes: timerPane, Priority: 50})
	r.Register(KeyBinding{Key: "esc", Handler: handleClearFilter, Panes: timerPane, Priority: 50})
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleFocus(m Model, _ string) (Model, tea.Cmd, bool) {
	m.focus = (m.focus + 1) % 2
	return m, nil, true
}

func handleCursor(m Model, key string) (Model, tea.Cmd, bool) {
	switch key {
	case "up", "k":
		m.cursor[m.focus]--
	case "down", "j":
		m.cursor[m.focus]++
	}
	return m, nil, true
}

// handleMove shifts the selected row one step and keeps it selected.
func handleMove(m Model, key string) (Model, tea.Cmd, bool) {
	delta := 1
	if key == "K" {
		delta = -1
	}
	if m.focus == PaneTemplates {
		tpl, ok := m.selectedTemplate()
		if !ok {
			return m, nil, true
		}
		err := m.templates.Move(m.ctx, tpl.ID, delta)
		m.cursorTo(PaneTemplates, tpl.ID)
		m.report("move template", err)
		return m, nil, true
	}

	t, ok := m.selectedTimer()
	if !ok {
		return m, nil, true
	}
	if !m.filter.Empty() {
		m.setStatusError("Clear the filter before reordering")
		return m, nil, true
	}
	m.acknowledgeSelected()
	err := m.timers.Move(m.ctx, t.ID, delta)
	m.cursorTo(PaneTimers, t.ID)
	m.report("move timer", err)
	return m, nil, true
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	dir := m.reportDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	if err := util.EnsureDir(dir); err != nil {
		m.report("export roster", err)
		return m, nil, true
	}
	path, err := report.WriteFile(filepath.Join(dir, config.ReportFileName), report.Roster{
		Templates:   m.templates.List(),
		Timers:      m.timers.List(),
		GeneratedAt: m.clock.Now(),
	})
	if err != nil {
		m.report("export roster", err)
		return m, nil, true
	}
	m.log.Info("roster exported", "path", path)
	m.setStatus("Exported " + path)
	return m, nil, true
}

func handleTemplateAdd(m Model, _ string) (Model, tea.Cmd, bool) {
	m.modal = newTemplateForm(nil)
	return m, nil, true
}

func handleTemplateEdit(m Model, _ string) (Model, tea.Cmd, bool) {
	tpl, ok := m.selectedTemplate()
	if !ok {
		return m, nil, true
	}
	if !m.templates.Editable(tpl.ID) {
		m.setStatusError("Stop its timers before editing " + tpl.Name)
		return m, nil, true
	}
	m.modal = newTemplateForm(&tpl)
	return m, nil, true
}

func handleTemplateDelete(m Model, _ string) (Model, tea.Cmd, bool) {
	tpl, ok := m.selectedTemplate()
	if !ok {
		return m, nil, true
	}
	if !m.templates.Editable(tpl.ID) {
		m.setStatusError("Stop its timers before deleting " + tpl.Name)
		return m, nil, true
	}
	m.modal = &ConfirmDeleteState{
		TemplateID: tpl.ID,
		Label:      tpl.Name,
		Bound:      m.templates.BoundTimers(tpl.ID),
	}
	return m, nil, true
}

func handleActivate(m Model, _ string) (Model, tea.Cmd, bool) {
	tpl, ok := m.selectedTemplate()
	if !ok {
		return m, nil, true
	}
	m.modal = newCustomerForm(tpl.ID, "", "")
	return m, nil, true
}

func handleStartPause(m Model, _ string) (Model, tea.Cmd, bool) {
	t, ok := m.selectedTimer()
	if !ok {
		return m, nil, true
	}
	m.acknowledgeSelected()
	if t.Status == models.StatusRunning {
		m.report("pause timer", m.timers.Pause(t.ID))
	} else {
		m.report("start timer", m.timers.Start(t.ID))
	}
	return m, nil, true
}

func handleStop(m Model, _ string) (Model, tea.Cmd, bool) {
	t, ok := m.selectedTimer()
	if !ok {
		return m, nil, true
	}
	m.acknowledgeSelected()
	m.report("stop timer", m.timers.Stop(t.ID))
	return m, nil, true
}

func handleTimerEdit(m Model, _ string) (Model, tea.Cmd, bool) {
	t, ok := m.selectedTimer()
	if !ok {
		return m, nil, true
	}
	m.acknowledgeSelected()
	if t.Status != models.StatusStopped {
		m.setStatusError("Stop the timer before renaming it")
		return m, nil, true
	}
	m.modal = newCustomerForm("", t.ID, t.CustomerName)
	return m, nil, true
}

func handleTimerDelete(m Model, _ string) (Model, tea.Cmd, bool) {
	t, ok := m.selectedTimer()
	if !ok {
		return m, nil, true
	}
	m.acknowledgeSelected()
	if t.Status != models.StatusStopped {
		m.setStatusError("Stop the timer before deleting it")
		return m, nil, true
	}
	m.modal = &ConfirmDeleteState{TimerID: t.ID, Label: t.CustomerName}
	return m, nil, true
}

func handleAcknowledge(m Model, _ string) (Model, tea.Cmd, bool) {
	m.acknowledgeSelected()
	return m, nil, true
}

func handleFilter(m Model, _ string) (Model, tea.Cmd, bool) {
	m.modal = newFilter(m.query)
	return m, nil, true
}

func handleClearFilter(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.filter.Empty() {
		return m, nil, false
	}
	m.query = ""
	m.filter = util.SearchQuery{}
	return m, nil, true
}

// report shows the outcome of an action on the status line. Storage
// failures are logged too; the in-memory change already happened.
func (m *Model) report(action string, err error) {
	if err == nil {
		return
	}
	var verr *models.ValidationError
	var terr *lifecycle.TransitionError
	var serr *database.StorageError
	switch {
	case errors.As(err, &verr), errors.As(err, &terr):
		m.setStatusError(err.Error())
	case errors.As(err, &serr):
		util.LogError(m.log, action, err)
		m.setStatusError(fmt.Sprintf("Could not save (%s): changes kept for this session", action))
	default:
		util.LogError(m.log, action, err)
		m.setStatusError(fmt.Sprintf("Failed to %s: %v", action, err))
	}
}
