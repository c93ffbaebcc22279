package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const recentEntryLimit = 6

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (m JournalModel) renderRecent() string {
	th := CurrentTheme
	var b strings.Builder
	b.WriteString(th.Header.Render("Recent entries"))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(th.Dim.Render("none yet"))
		return b.String()
	}
	// The server lists entries newest first; show them as-is.
	limit := len(m.entries)
	if limit > recentEntryLimit {
		limit = recentEntryLimit
	}
	for _, e := range m.entries[:limit] {
		b.WriteString(th.Label.Render(e.Date))
		b.WriteString(" ")
		b.WriteString(ansi.Truncate(firstLine(e.Content), 22, "…"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m JournalModel) renderEntryPane() string {
	th := CurrentTheme
	var b strings.Builder

	title := m.date.Format("Monday, January 2, 2006")
	b.WriteString(th.Header.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(th.Dim.Render("Loading entry..."))
	case m.confirmingDelete:
		b.WriteString(th.Error.Render("Delete this entry? [y] yes  [n] no"))
	case m.mode == journalEditing:
		b.WriteString(m.editor.View())
		b.WriteString("\n")
		b.WriteString(th.Dim.Render("[ctrl+s] save  [esc] cancel"))
	default:
		if m.content == "" {
			b.WriteString(th.Dim.Render("(empty)"))
		} else {
			b.WriteString(m.content)
		}
		b.WriteString("\n\n")
		hints := "[e] edit  [←/→] day  [[/]] month  [t] today"
		if m.hasEntry {
			hints += "  [d] delete"
		}
		b.WriteString(th.Dim.Render(hints))
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

func (m JournalModel) View() string {
	marked := markedDays(m.entries, m.date)
	left := lipgloss.JoinVertical(lipgloss.Left,
		renderMonth(m.date, m.date.Day(), marked),
		"",
		m.renderRecent(),
	)
	gap := strings.Repeat(" ", 4)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, m.renderEntryPane())
}
