package tui

import (
	"fmt"
	"strings"
	"time"

	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
)

// markedDays returns the day numbers within month that have a journal
// entry. Entries outside the month are ignored.
func markedDays(entries []models.JournalEntry, month time.Time) map[int]bool {
	marked := make(map[int]bool)
	for _, e := range entries {
		d, err := timeutil.ParseDate(e.Date)
		if err != nil {
			continue
		}
		if timeutil.SameMonth(d, month) {
			marked[d.Day()] = true
		}
	}
	return marked
}

// renderMonth draws a Monday-start calendar grid for the month containing
// ref, highlighting the selected day and marking days with entries.
func renderMonth(ref time.Time, selectedDay int, marked map[int]bool) string {
	th := CurrentTheme
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7 // Monday column 0

	var b strings.Builder
	b.WriteString(th.Header.Render(first.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(th.Label.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	col := 0
	for i := 0; i < lead; i++ {
		b.WriteString("   ")
		col++
	}
	today := time.Now()
	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == selectedDay:
			cell = th.Selected.Render(cell)
		case timeutil.SameMonth(ref, today) && day == today.Day():
			cell = th.Today.Render(cell)
		case marked[day]:
			cell = th.Marked.Render(cell)
		default:
			cell = th.Dim.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), " \n")
}
