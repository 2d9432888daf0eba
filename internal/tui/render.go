package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/custimer/internal/config"
	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/util"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func statusGlyph(s models.TimerStatus) string {
	switch s {
	case models.StatusRunning:
		return "▶"
	case models.StatusPaused:
		return "⏸"
	default:
		return "■"
	}
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m Model) paneWidth() int {
	if m.width == 0 {
		return config.TargetNameWidth + 20
	}
	w := m.width - 4
	if !m.compact() {
		w = w/2 - 1
	}
	if w < config.MinPaneWidth {
		w = config.MinPaneWidth
	}
	return w
}

func (m Model) nameWidth() int {
	// cursor, glyph, clock and padding
	w := m.paneWidth() - 14
	if w > config.TargetNameWidth {
		w = config.TargetNameWidth
	}
	if w < config.MinNameWidth {
		w = config.MinNameWidth
	}
	return w
}

func (m Model) View() string {
	th := CurrentTheme
	var b strings.Builder

	b.WriteString(th.Header.Render(strings.ToUpper(config.AppName)))
	b.WriteString(th.Dim.Render("  " + versionLabel()))
	b.WriteString("\n\n")

	left := m.renderPane(PaneTemplates, "Templates", m.templateRows())
	right := m.renderPane(PaneTimers, m.timerTitle(), m.timerRows())
	if m.compact() {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, left, right))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}
	b.WriteString("\n")

	if m.modal != nil {
		b.WriteString(m.renderModal())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return th.Base.Render(b.String())
}

func (m Model) timerTitle() string {
	if m.query == "" {
		return "Timers"
	}
	return "Timers [" + m.query + "]"
}

func (m Model) renderPane(pane int, title string, rows []string) string {
	th := CurrentTheme
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Width(m.paneWidth()).
		Padding(0, 1)
	heading := th.Dim.Render(title)
	if m.focus == pane {
		border = border.BorderForeground(th.Focused.GetForeground())
		heading = th.Focused.Render(title)
	}

	visible := m.visibleRows()
	start := m.offset[pane]
	end := min(start+visible, len(rows))
	lines := []string{heading}
	if len(rows) == 0 {
		lines = append(lines, th.Dim.Render("(empty)"))
	} else {
		lines = append(lines, rows[start:end]...)
		if hidden := len(rows) - end; hidden > 0 {
			lines = append(lines, th.Dim.Render(fmt.Sprintf("… %d more", hidden)))
		}
	}
	return border.Render(strings.Join(lines, "\n"))
}

func (m Model) cursorMark(pane, i int) string {
	if m.focus == pane && m.cursor[pane] == i {
		return "> "
	}
	return "  "
}

func (m Model) templateRows() []string {
	th := CurrentTheme
	nw := m.nameWidth()
	list := m.templates.List()
	rows := make([]string, 0, len(list))
	for i, tpl := range list {
		style := th.Row
		if !m.templates.Editable(tpl.ID) {
			style = th.Locked
		}
		line := fmt.Sprintf("%s%-*s %s", m.cursorMark(PaneTemplates, i), nw, truncateLabel(tpl.Name, nw), util.FormatClock(tpl.Duration))
		if m.focus == PaneTemplates && m.cursor[PaneTemplates] == i {
			style = th.Highlight
		}
		rows = append(rows, style.Render(line))
	}
	return rows
}

func (m Model) timerRows() []string {
	nw := m.nameWidth()
	list := m.visibleTimers()
	rows := make([]string, 0, len(list))
	for i, t := range list {
		line := fmt.Sprintf("%s%s %-*s %s", m.cursorMark(PaneTimers, i), statusGlyph(t.Status), nw, truncateLabel(t.CustomerName, nw), util.FormatClock(t.Remaining))
		rows = append(rows, m.timerStyle(t).Render(line))
	}
	return rows
}

func (m Model) timerStyle(t models.Timer) lipgloss.Style {
	th := CurrentTheme
	if m.alerts != nil && m.alerts.Highlighted(t.ID) {
		if m.blink {
			return th.Alert
		}
		return th.Error
	}
	switch t.Status {
	case models.StatusRunning:
		return th.Running
	case models.StatusPaused:
		return th.Paused
	}
	return th.Stopped
}

func (m Model) renderModal() string {
	th := CurrentTheme
	var title string
	var body []string
	switch s := m.modal.(type) {
	case *TemplateFormState:
		title = "New template"
		if s.TemplateID != "" {
			title = "Edit template"
		}
		body = append(body, "Name:     "+s.Name.View(), "Duration: "+s.Clock.View())
		if n := len(m.templates.BoundTimers(s.TemplateID)); s.TemplateID != "" && n > 0 {
			body = append(body, th.Dim.Render(fmt.Sprintf("Stopped timers using it (%d) reset to the new duration.", n)))
		}
	case *CustomerFormState:
		title = "Rename timer"
		if s.TimerID == "" {
			title = "New timer"
			if tpl, err := m.templates.Get(s.TemplateID); err == nil {
				title = fmt.Sprintf("New timer: %s (%s)", tpl.Name, util.FormatClock(tpl.Duration))
			}
		}
		body = append(body, "Customer: "+s.Name.View())
	case *ConfirmDeleteState:
		if s.TimerID != "" {
			title = "Delete timer"
			body = append(body, fmt.Sprintf("Delete timer for %s?", s.Label))
		} else {
			title = "Delete template"
			body = append(body, fmt.Sprintf("Delete template %s?", s.Label))
			if len(s.Bound) > 0 {
				body = append(body, th.Error.Render(fmt.Sprintf("This also deletes %d timer(s):", len(s.Bound))))
				for _, t := range s.Bound {
					body = append(body, "  • "+truncateLabel(t.CustomerName, config.TargetNameWidth))
				}
			}
		}
		body = append(body, th.Dim.Render("[y] Yes  [n] No"))
	case *FilterState:
		title = "Filter timers"
		body = append(body, s.Query.View())
	}
	if _, ok := m.modal.(inputModal); ok {
		body = append(body, th.Dim.Render("[enter] Save  [tab] Next field  [esc] Cancel"))
	}
	return th.Input.Render(th.Header.Render(title) + "\n" + strings.Join(body, "\n"))
}

func (m Model) renderFooter() string {
	th := CurrentTheme
	help := m.keys.HelpForPane(m.focus)
	lines := []string{th.Dim.Render(truncateLabel(help, max(m.width-4, 20)))}
	if m.status != "" {
		style := th.Row
		if m.statusErr {
			style = th.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return strings.Join(lines, "\n")
}
