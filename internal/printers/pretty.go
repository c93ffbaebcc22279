// Package printers renders API data as colored tables for the one-shot CLI
// commands.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"lifetrack/internal/models"
)

// Stats prints the dashboard aggregate.
func Stats(stats models.DashboardStats) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, "Dashboard")

	table := uitable.New()
	table.AddRow("Journal entries:", stats.TotalJournalEntries)
	table.AddRow("Life tasks:", stats.TotalLifeTasks)
	table.AddRow("Journaled today:", yesNo(stats.HasTodayJournal))
	table.AddRow("Progress logs today:", stats.TodayProgressCount)
	_, _ = fmt.Fprintln(color.Output, table)
}

// Tasks prints the life-task list with today's values. A Failed value
// renders as "?" so a fetch failure never reads as a zero.
func Tasks(tasks []models.LifeTask, values map[string]models.TaskProgress) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, "Life tasks")

	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, " none")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("NAME", "CATEGORY", "TODAY", "TARGET", "DONE")
	for _, task := range tasks {
		p := values[task.ID]
		today := fmt.Sprintf("%d", p.Value)
		done := fmt.Sprintf("%d%%", models.ProgressPercent(p.Value, task.TargetValue))
		if p.Failed {
			today, done = "?", "?"
		}
		table.AddRow(task.Name, task.Category, today, task.TargetValue, done)
	}
	_, _ = fmt.Fprintln(color.Output, table)
}

func yesNo(b bool) string {
	if b {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
