package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/custimer/internal/models"
)

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("expected untouched label, got %q", got)
	}
	if got := truncateLabel("a very long customer name", 8); len([]rune(got)) > 8 {
		t.Fatalf("expected at most 8 cells, got %q", got)
	}
	if got := truncateLabel("x", 0); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}

func TestStatusGlyphs(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []models.TimerStatus{models.StatusStopped, models.StatusRunning, models.StatusPaused} {
		seen[statusGlyph(s)] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected distinct glyphs, got %v", seen)
	}
}

func TestViewEmptyPanes(t *testing.T) {
	m, _ := setupModel(t)
	view := m.View()
	for _, want := range []string{"Templates", "Timers", "(empty)", "[a]Add"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestCompactLayoutStacksPanes(t *testing.T) {
	m, _ := setupModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 40})
	if !m.compact() {
		t.Fatalf("expected compact mode at width 60")
	}
	view := m.View()
	tpl := strings.Index(view, "Templates")
	tmr := strings.Index(view, "Timers")
	if tpl < 0 || tmr < 0 {
		t.Fatalf("expected both pane titles")
	}
	if !strings.Contains(view[tpl:tmr], "\n") {
		t.Fatalf("expected timers pane below templates pane")
	}
}

func TestHelpFollowsFocus(t *testing.T) {
	m, _ := setupModel(t)
	if help := m.keys.HelpForPane(PaneTemplates); !strings.Contains(help, "Activate") || strings.Contains(help, "Stop") {
		t.Fatalf("unexpected template help %q", help)
	}
	if help := m.keys.HelpForPane(PaneTimers); !strings.Contains(help, "Stop") || strings.Contains(help, "Activate") {
		t.Fatalf("unexpected timer help %q", help)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m, _ := setupModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 12})
	for i := 0; i < 6; i++ {
		m = addTemplate(t, m, "T", "01:00")
	}
	rows := m.visibleRows()
	for i := 0; i < 5; i++ {
		m = press(t, m, "down")
	}
	if m.cursor[PaneTemplates] != 5 {
		t.Fatalf("expected cursor 5, got %d", m.cursor[PaneTemplates])
	}
	if m.offset[PaneTemplates] != 5-rows+1 {
		t.Fatalf("expected offset %d, got %d", 5-rows+1, m.offset[PaneTemplates])
	}
	m = press(t, m, "down")
	if m.cursor[PaneTemplates] != 5 {
		t.Fatalf("expected cursor to stop at the last row")
	}
}
