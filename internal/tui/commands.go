package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/custimer/internal/ticker"
)

// --- Messages ---
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// CallbackMsg carries work posted from a scheduler goroutine. It runs
// inside Update, so it never races with key handling.
type CallbackMsg struct {
	Fn func()
}

// Poster returns a ticker.Poster that delivers callbacks through send,
// typically (*tea.Program).Send.
func Poster(send func(tea.Msg)) ticker.Poster {
	return func(fn func()) {
		send(CallbackMsg{Fn: fn})
	}
}
