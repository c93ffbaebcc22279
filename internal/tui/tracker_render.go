package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"lifetrack/internal/config"
	"lifetrack/internal/models"
)

func (m TrackerModel) renderTaskRow(i int, task models.LifeTask) string {
	th := CurrentTheme
	cursor := "  "
	nameStyle := th.Value
	if i == m.cursor {
		cursor = th.Selected.Render("> ")
		nameStyle = th.Selected
	}

	name := ansi.Truncate(task.Name, 24, "…")
	header := fmt.Sprintf("%s%s %s", cursor, nameStyle.Render(name), th.Category.Render("["+task.Category+"]"))

	p := m.values[task.ID]
	var gauge string
	switch {
	case m.valuesLoading:
		gauge = th.Dim.Render("loading today's value...")
	case p.Failed:
		// A failed fetch is not a zero; make the difference impossible to miss.
		gauge = th.FailedMark.Render("! today's value unavailable")
	default:
		pct := models.ProgressPercent(p.Value, task.TargetValue)
		gauge = fmt.Sprintf("%s %s", m.bar.ViewAs(float64(pct)/100), th.Label.Render(fmt.Sprintf("%d/%d (%d%%)", p.Value, task.TargetValue, pct)))
	}

	return header + "\n    " + gauge
}

func (m TrackerModel) renderForm() string {
	th := CurrentTheme
	title := "New task"
	if m.form.editingID != "" {
		title = "Edit task"
	}

	category := config.Categories[m.form.categoryIdx]
	catLine := th.Label.Render("Category: ") + th.Value.Render("< "+category+" >")
	if m.form.focus == 2 {
		catLine = th.Label.Render("Category: ") + th.Selected.Render("< "+category+" >")
	}

	body := strings.Join([]string{
		th.Header.Render(title),
		th.Label.Render("Name:        ") + m.form.name.View(),
		th.Label.Render("Description: ") + m.form.description.View(),
		catLine,
		th.Label.Render("Daily target:") + " " + m.form.target.View(),
		th.Dim.Render("[tab] next field  [enter] save  [esc] cancel"),
	}, "\n")
	return th.Input.Render(body)
}

func (m TrackerModel) View() string {
	th := CurrentTheme
	var b strings.Builder
	b.WriteString(th.Header.Render("Life Tracker"))
	b.WriteString("\n\n")

	switch {
	case m.mode == trackerForm:
		b.WriteString(m.renderForm())
	case m.loading:
		b.WriteString(th.Dim.Render("Loading tasks..."))
	case len(m.tasks) == 0:
		b.WriteString(th.Dim.Render("No life tasks yet. Press [n] to create one."))
	default:
		for i, task := range m.tasks {
			b.WriteString(m.renderTaskRow(i, task))
			b.WriteString("\n")
		}
		if m.mode == trackerConfirmDelete {
			if task, ok := m.selectedTask(); ok {
				b.WriteString("\n")
				b.WriteString(th.Error.Render(fmt.Sprintf("Delete %q and all its progress? [y] yes  [n] no", task.Name)))
			}
		} else {
			b.WriteString("\n")
			b.WriteString(th.Dim.Render("[↑/↓] select  [←/→] adjust today  [H/L] big step  [n] new  [e] edit  [d] delete"))
		}
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
