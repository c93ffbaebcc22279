package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-pdf/fpdf"

	"lifetrack/internal/config"
	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
	"lifetrack/internal/util"
)

func writeReportCmd(task models.LifeTask, start time.Time, values []DayValue, sum WeekSummary) tea.Cmd {
	return func() tea.Msg {
		path, err := WriteWeeklyReport(util.ReportsDir(config.AppName), task, start, values, sum)
		return reportSavedMsg{path: path, err: err}
	}
}

// WriteWeeklyReport renders one week of a task's progress as a PDF and
// returns the file path.
func WriteWeeklyReport(dir string, task models.LifeTask, start time.Time, values []DayValue, sum WeekSummary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Weekly Progress: %s", task.Name))
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	end := start.AddDate(0, 0, timeutil.DaysPerWeek-1)
	pdf.Cell(0, 8, fmt.Sprintf("Week %s to %s  |  daily target %d  |  category %s",
		timeutil.FormatDate(start), timeutil.FormatDate(end), task.TargetValue, task.Category))
	pdf.Ln(12)

	pdf.SetFont("Courier", "", 11)
	for _, v := range values {
		bar := strings.Repeat("#", barLength(v.Value, task.TargetValue))
		pdf.Cell(0, 7, fmt.Sprintf("%s  %4d  %s", v.Date.Format("Mon 2006-01-02"), v.Value, bar))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d   Average: %.1f   Best: %d   Active days: %d/7",
		sum.Total, sum.Average, sum.Best, sum.ActiveDays))

	if task.Description != "" {
		pdf.Ln(10)
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, task.Description, "", "", false)
	}

	filename := fmt.Sprintf("weekly_%s_%s.pdf", sanitizeFilename(task.Name), timeutil.FormatDate(start))
	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func sanitizeFilename(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	if clean == "" {
		return "task"
	}
	return clean
}
