// Package report renders the recorded session history as a PDF.
package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/countdown/internal/storage"
	"github.com/akyairhashvil/countdown/internal/timer"
)

// Generate writes a summary of past countdown sessions to path.
func Generate(sessions []storage.Session, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Countdown Sessions")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)

	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No sessions recorded.")
		pdf.Ln(8)
	}

	completed := 0
	for _, s := range sessions {
		status := "abandoned"
		if s.Completed {
			status = "completed"
			completed++
		}
		line := fmt.Sprintf("%s  %s  (%s)",
			s.StartedAt.Format("2006-01-02 15:04"),
			timer.FromSeconds(s.DurationSeconds).String(),
			status,
		)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %d sessions, %d completed", len(sessions), completed))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
