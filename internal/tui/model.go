package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View identifies the active top-level view.
type View int

const (
	ViewDashboard View = iota
	ViewJournal
	ViewTracker
	ViewWeekly
)

var viewTitles = map[View]string{
	ViewDashboard: "Dashboard",
	ViewJournal:   "Journal",
	ViewTracker:   "Life Tracker",
	ViewWeekly:    "Weekly Progress",
}

// MainModel is the app shell: it holds the view selector, runs the one-time
// connectivity probe, and delegates everything else to the active view.
// Switching views rebuilds the target sub-model, so every view re-fetches
// from empty state on mount.
type MainModel struct {
	svc        Service
	view       View
	dashboard  DashboardModel
	journal    JournalModel
	tracker    TrackerModel
	weekly     WeeklyModel
	connNotice string
	width      int
	height     int
}

func NewMainModel(svc Service, themeName string) MainModel {
	SetTheme(themeName)
	return MainModel{
		svc:       svc,
		view:      ViewDashboard,
		dashboard: NewDashboardModel(svc),
	}
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(pingCmd(m.svc), m.dashboard.Init())
}

// inInputMode reports whether the active view is capturing free text, in
// which case global key shortcuts must not fire.
func (m MainModel) inInputMode() bool {
	switch m.view {
	case ViewJournal:
		return m.journal.InInputMode()
	case ViewTracker:
		return m.tracker.InInputMode()
	}
	return false
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if !m.inInputMode() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				return m.switchTo(ViewDashboard)
			case "2":
				return m.switchTo(ViewJournal)
			case "3":
				return m.switchTo(ViewTracker)
			case "4":
				return m.switchTo(ViewWeekly)
			case "tab":
				return m.switchTo((m.view + 1) % 4)
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case pingMsg:
		if msg.err != nil {
			m.connNotice = "Cannot reach the API. Check your base URL; actions will fail until the server is back."
		}
		return m, nil
	case navigateMsg:
		return m.switchTo(msg.view)
	}

	return m.routeToActive(msg)
}

// switchTo discards the current sub-model and mounts a fresh one.
func (m MainModel) switchTo(v View) (tea.Model, tea.Cmd) {
	m.view = v
	switch v {
	case ViewDashboard:
		m.dashboard = NewDashboardModel(m.svc)
		return m, m.dashboard.Init()
	case ViewJournal:
		m.journal = NewJournalModel(m.svc)
		m.journal.SetSize(m.width, m.height)
		return m, m.journal.Init()
	case ViewTracker:
		m.tracker = NewTrackerModel(m.svc)
		m.tracker.SetSize(m.width, m.height)
		return m, m.tracker.Init()
	case ViewWeekly:
		m.weekly = NewWeeklyModel(m.svc)
		m.weekly.SetSize(m.width, m.height)
		return m, m.weekly.Init()
	}
	return m, nil
}

func (m MainModel) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewJournal:
		m.journal, cmd = m.journal.Update(msg)
	case ViewTracker:
		m.tracker, cmd = m.tracker.Update(msg)
	case ViewWeekly:
		m.weekly, cmd = m.weekly.Update(msg)
	}
	return m, cmd
}

func (m MainModel) renderTabs() string {
	th := CurrentTheme
	var tabs []string
	for v := ViewDashboard; v <= ViewWeekly; v++ {
		label := viewTitles[v]
		if v == m.view {
			tabs = append(tabs, th.TabActive.Render(label))
		} else {
			tabs = append(tabs, th.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m MainModel) View() string {
	th := CurrentTheme

	var body string
	switch m.view {
	case ViewDashboard:
		body = m.dashboard.View()
	case ViewJournal:
		body = m.journal.View()
	case ViewTracker:
		body = m.tracker.View()
	case ViewWeekly:
		body = m.weekly.View()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.connNotice != "" {
		b.WriteString(th.Error.Render(m.connNotice))
		b.WriteString("\n")
	}
	b.WriteString(th.Dim.Render("[1-4] switch view  [tab] next  [q] quit"))
	return th.Base.Render(b.String())
}
