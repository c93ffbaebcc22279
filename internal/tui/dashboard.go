package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lifetrack/internal/models"
	"lifetrack/internal/util"
)

// DashboardModel is the landing view: aggregate counts plus shortcuts into
// the other views. It fetches once on mount; a failure leaves the
// zero-valued stats in place with no retry.
type DashboardModel struct {
	svc     Service
	stats   models.DashboardStats
	loading bool
	seq     int
}

func NewDashboardModel(svc Service) DashboardModel {
	return DashboardModel{svc: svc, loading: true, seq: nextSeq()}
}

func (m DashboardModel) Init() tea.Cmd {
	return loadStatsCmd(m.svc, m.seq)
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			util.LogError("loading dashboard stats", msg.err)
			return m, nil
		}
		m.stats = msg.stats
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "j":
			// Writing is pointless when today already has an entry.
			if m.stats.HasTodayJournal {
				return m, nil
			}
			return m, navigateCmd(ViewJournal)
		case "t":
			return m, navigateCmd(ViewTracker)
		case "w":
			return m, navigateCmd(ViewWeekly)
		}
	}
	return m, nil
}

// greetingFor picks the salutation for a local clock hour.
func greetingFor(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (m DashboardModel) renderCards() string {
	th := CurrentTheme
	yn := "no"
	if m.stats.HasTodayJournal {
		yn = "yes"
	}
	cards := []string{
		th.Card.Render(fmt.Sprintf("%s\n%s", th.Label.Render("Journal entries"), th.Value.Render(fmt.Sprintf("%d", m.stats.TotalJournalEntries)))),
		th.Card.Render(fmt.Sprintf("%s\n%s", th.Label.Render("Life tasks"), th.Value.Render(fmt.Sprintf("%d", m.stats.TotalLifeTasks)))),
		th.Card.Render(fmt.Sprintf("%s\n%s", th.Label.Render("Journaled today"), th.Value.Render(yn))),
		th.Card.Render(fmt.Sprintf("%s\n%s", th.Label.Render("Progress logs today"), th.Value.Render(fmt.Sprintf("%d", m.stats.TodayProgressCount)))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m DashboardModel) View() string {
	th := CurrentTheme
	now := time.Now()

	var b strings.Builder
	b.WriteString(th.Header.Render(fmt.Sprintf("%s. Today is %s.", greetingFor(now.Hour()), now.Format("Monday, January 2, 2006"))))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(th.Dim.Render("Loading stats..."))
		return b.String()
	}

	b.WriteString(m.renderCards())
	b.WriteString("\n\n")

	journalHint := "[j] write today's journal"
	if m.stats.HasTodayJournal {
		b.WriteString(th.Dim.Render(journalHint + " (done)"))
	} else {
		b.WriteString(th.Value.Render(journalHint))
	}
	b.WriteString("\n")
	b.WriteString(th.Value.Render("[t] log progress"))
	b.WriteString("\n")
	b.WriteString(th.Value.Render("[w] weekly review"))
	return b.String()
}
