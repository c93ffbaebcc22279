package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
)

func (m WeeklyModel) renderTaskPicker() string {
	th := CurrentTheme
	var b strings.Builder
	b.WriteString(th.Header.Render("Task"))
	b.WriteString("\n")
	for i, task := range m.tasks {
		line := ansi.Truncate(task.Name, 22, "…")
		if i == m.taskIdx {
			b.WriteString(th.Selected.Render("> " + line))
		} else {
			b.WriteString(th.Dim.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m WeeklyModel) renderWeek(task models.LifeTask) string {
	th := CurrentTheme
	start, end := timeutil.WeekBounds(time.Now(), m.offset)
	values := weekValues(m.entries, start)
	sum := summarizeWeek(values)

	var b strings.Builder
	label := "This week"
	if m.offset == 1 {
		label = "Last week"
	} else if m.offset > 1 {
		label = fmt.Sprintf("%d weeks ago", m.offset)
	}
	b.WriteString(th.Header.Render(fmt.Sprintf("%s  %s – %s", label, timeutil.FormatDate(start), timeutil.FormatDate(end))))
	b.WriteString("\n\n")

	if m.historyLoading {
		b.WriteString(th.Dim.Render("Loading history..."))
		return b.String()
	}

	for _, v := range values {
		bar := strings.Repeat("█", barLength(v.Value, task.TargetValue))
		line := fmt.Sprintf("%s %s %s",
			th.Label.Render(v.Date.Format("Mon 01-02")),
			th.Value.Render(fmt.Sprintf("%4d", v.Value)),
			th.Marked.Render(bar),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Label.Render("Total: ") + th.Value.Render(fmt.Sprintf("%d", sum.Total)))
	b.WriteString(th.Label.Render("   Average: ") + th.Value.Render(fmt.Sprintf("%.1f", sum.Average)))
	b.WriteString(th.Label.Render("   Best: ") + th.Value.Render(fmt.Sprintf("%d", sum.Best)))
	b.WriteString(th.Label.Render("   Active days: ") + th.Value.Render(fmt.Sprintf("%d/7", sum.ActiveDays)))
	return b.String()
}

// barLength scales a day's value to a small text bar.
func barLength(value, target int) int {
	const maxBar = 20
	pct := models.ProgressPercent(value, target)
	return pct * maxBar / 100
}

func (m WeeklyModel) View() string {
	th := CurrentTheme
	var b strings.Builder
	b.WriteString(th.Header.Render("Weekly Progress"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(th.Dim.Render("Loading tasks..."))
	case len(m.tasks) == 0:
		b.WriteString(th.Dim.Render("No life tasks to review. Create one in the Life Tracker first."))
	default:
		task, _ := m.selectedTask()
		gap := strings.Repeat(" ", 4)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderTaskPicker(), gap, m.renderWeek(task)))
		b.WriteString("\n\n")
		b.WriteString(th.Dim.Render("[↑/↓] task  [←] older week  [→] newer week  [e] export PDF"))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(th.Error.Render(m.status))
		} else {
			b.WriteString(th.Success.Render(m.status))
		}
	}
	return b.String()
}
