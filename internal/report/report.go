// Package report renders completed sessions to PDF.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/focusring/internal/models"
	"github.com/go-pdf/fpdf"
)

// Source supplies the sessions for a time range.
type Source interface {
	SessionRecordsBetween(ctx context.Context, from, to time.Time) ([]models.SessionRecord, error)
}

// Summary totals a set of records by kind.
type Summary struct {
	Sessions     int
	FocusSeconds int
	BreakSeconds int
}

// Summarize counts work and custom sessions as focus time.
func Summarize(recs []models.SessionRecord) Summary {
	var s Summary
	for _, r := range recs {
		s.Sessions++
		if r.Kind == models.KindBreak {
			s.BreakSeconds += r.DurationSeconds
		} else {
			s.FocusSeconds += r.DurationSeconds
		}
	}
	return s
}

// ExportDay writes the report for the local calendar day containing day into
// dir and returns the file path.
func ExportDay(ctx context.Context, src Source, dir string, day time.Time) (string, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	recs, err := src.SessionRecordsBetween(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("focus_%s.pdf", start.Format("2006-01-02")))
	if err := Write(path, start, recs); err != nil {
		return "", err
	}
	return path, nil
}

// Write renders recs as a one-day report at path.
func Write(path string, day time.Time, recs []models.SessionRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: %s", day.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(recs) == 0 {
		pdf.Cell(0, 8, "No completed sessions.")
		pdf.Ln(8)
	}
	for _, r := range recs {
		label := r.Label
		if label == "" {
			label = string(r.Kind)
		}
		line := fmt.Sprintf("[%s]  %-6s  %s  %s",
			r.CompletedAt.In(day.Location()).Format("15:04"),
			r.Kind,
			models.FormatClock(r.DurationSeconds),
			label)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	sum := Summarize(recs)
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Sessions: %d   Focus: %s   Break: %s",
		sum.Sessions, models.FormatClock(sum.FocusSeconds), models.FormatClock(sum.BreakSeconds)))
	pdf.Ln(10)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
