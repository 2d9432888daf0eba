package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/util"
)

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if confirm, ok := m.modal.(*ConfirmDeleteState); ok {
		return m.updateConfirm(confirm, msg.String())
	}

	im, ok := m.modal.(inputModal)
	if !ok {
		m.modal = nil
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.modal = nil
		return m, nil
	case "tab", "shift+tab":
		n := len(im.Inputs())
		step := 1
		if msg.String() == "shift+tab" {
			step = n - 1
		}
		im.SetFocus((im.FocusIndex() + step) % n)
		return m, nil
	case "enter":
		return m.submitModal()
	}

	in := im.Inputs()[im.FocusIndex()]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

// submitModal applies the open form. Validation failures keep the form
// open so the operator can correct the input.
func (m Model) submitModal() (tea.Model, tea.Cmd) {
	switch s := m.modal.(type) {
	case *TemplateFormState:
		d, err := models.ParseClock(s.Clock.Value())
		if err != nil {
			m.setStatusError(err.Error())
			return m, nil
		}
		if s.TemplateID == "" {
			tpl, err := m.templates.Add(m.ctx, s.Name.Value(), d)
			if isValidation(err) {
				m.setStatusError(err.Error())
				return m, nil
			}
			m.modal = nil
			m.cursorTo(PaneTemplates, tpl.ID)
			m.report("add template", err)
			if err == nil {
				m.setStatus("Added template " + tpl.Name)
			}
			return m, nil
		}
		tpl, err := m.templates.Edit(m.ctx, s.TemplateID, s.Name.Value(), d)
		if isValidation(err) {
			m.setStatusError(err.Error())
			return m, nil
		}
		m.modal = nil
		m.report("edit template", err)
		if err == nil {
			m.setStatus("Updated template " + tpl.Name)
		}
	case *CustomerFormState:
		if s.TimerID == "" {
			tpl, err := m.templates.Get(s.TemplateID)
			if err != nil {
				m.modal = nil
				m.report("activate timer", err)
				return m, nil
			}
			t, err := m.timers.Activate(m.ctx, tpl, s.Name.Value())
			if isValidation(err) {
				m.setStatusError(err.Error())
				return m, nil
			}
			m.modal = nil
			m.focus = PaneTimers
			m.clampCursors()
			m.cursorTo(PaneTimers, t.ID)
			m.report("activate timer", err)
			return m, nil
		}
		_, err := m.timers.EditCustomerName(m.ctx, s.TimerID, s.Name.Value())
		if isValidation(err) {
			m.setStatusError(err.Error())
			return m, nil
		}
		m.modal = nil
		m.report("rename timer", err)
	case *FilterState:
		m.query = s.Query.Value()
		m.filter = util.ParseSearchQuery(m.query)
		m.modal = nil
		m.cursor[PaneTimers] = 0
	default:
		m.modal = nil
	}
	return m, nil
}

func (m Model) updateConfirm(s *ConfirmDeleteState, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
	case "n", "N", "esc":
		m.modal = nil
		return m, nil
	default:
		return m, nil
	}

	m.modal = nil
	if s.TimerID != "" {
		if m.alerts != nil {
			m.alerts.Acknowledge(s.TimerID)
		}
		err := m.timers.Delete(m.ctx, s.TimerID)
		m.report("delete timer", err)
		if err == nil {
			m.setStatus("Deleted timer " + s.Label)
		}
	} else {
		removed, err := m.templates.Delete(m.ctx, s.TemplateID)
		if m.alerts != nil {
			for _, t := range removed {
				m.alerts.Acknowledge(t.ID)
			}
		}
		m.report("delete template", err)
		if err == nil {
			m.setStatus("Deleted template " + s.Label)
		}
	}
	m.clampCursors()
	return m, nil
}

func isValidation(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr)
}
