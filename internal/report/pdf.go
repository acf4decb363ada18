// Package report renders a day's finished runs as a PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/go-pdf/fpdf"
)

// FileName is the report name for day.
func FileName(day time.Time) string {
	return fmt.Sprintf("pomo-%s.pdf", day.Format("2006-01-02"))
}

// WriteDaily writes the report for day into dir and returns its path.
func WriteDaily(dir string, day time.Time, runs []models.Run) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	summary := models.NewDaySummary(day)
	for _, r := range runs {
		summary.Add(r)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pomodoro Report: %s", summary.Date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Runs")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	if len(runs) == 0 {
		pdf.Cell(0, 8, "  - No runs finished.")
		pdf.Ln(8)
	}
	for _, r := range runs {
		line := fmt.Sprintf("  [%s]  %-12s %s", r.FinishedAt.Local().Format("15:04"), r.Preset.Label(), formatMinutes(r.Duration))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	for _, p := range models.Presets {
		pdf.Cell(0, 8, fmt.Sprintf("%s: %d", p.Label(), summary.Counts[p]))
		pdf.Ln(6)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Total Focus Time: %s", formatMinutes(summary.Focus)))
	pdf.Ln(10)

	path := filepath.Join(dir, FileName(day))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func formatMinutes(d time.Duration) string {
	mins := int(d / time.Minute)
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
