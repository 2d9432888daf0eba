// Package report renders the template and timer roster as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/custimer/internal/models"
	"github.com/akyairhashvil/custimer/internal/util"
)

// Roster is a point-in-time view of both collections.
type Roster struct {
	Templates   []models.Template
	Timers      []models.Timer
	GeneratedAt time.Time
}

func (r Roster) templateName(id string) string {
	for _, t := range r.Templates {
		if t.ID == id {
			return t.Name
		}
	}
	return "?"
}

// Write renders the roster to w.
func Write(w io.Writer, r Roster) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Timer Roster: %s", r.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	// Templates
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Templates (%d)", len(r.Templates)))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(r.Templates) == 0 {
		pdf.Cell(0, 8, "  - No templates defined.")
		pdf.Ln(8)
	}
	for _, t := range r.Templates {
		pdf.Cell(0, 8, tr(fmt.Sprintf("  %2d.  %s  %s", t.DisplayOrder+1, util.FormatClock(t.Duration), t.Name)))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Timers
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Timers (%d)", len(r.Timers)))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(r.Timers) == 0 {
		pdf.Cell(0, 8, "  - No active timers.")
		pdf.Ln(8)
	}
	counts := map[models.TimerStatus]int{}
	for _, t := range r.Timers {
		counts[t.Status]++
		line := fmt.Sprintf("  %2d.  [%s] %s  %s  (%s)",
			t.DisplayOrder+1, util.FormatClock(t.Remaining), t.Status, t.CustomerName, r.templateName(t.TemplateID))
		pdf.MultiCell(0, 8, tr(line), "", "", false)
	}

	// Summary
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Running: %d   Paused: %d   Stopped: %d",
		counts[models.StatusRunning], counts[models.StatusPaused], counts[models.StatusStopped]))
	pdf.Ln(10)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render roster: %w", err)
	}
	return nil
}

// WriteFile renders the roster into path, creating its directory.
func WriteFile(path string, r Roster) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
