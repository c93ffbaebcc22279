package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
	"lifetrack/internal/util"
)

// DayValue is one calendar day's recorded progress within a week.
type DayValue struct {
	Date  time.Time
	Value int
}

// WeekSummary is derived from seven daily values. Average always divides
// by seven, regardless of how many days were active.
type WeekSummary struct {
	Total      int
	Average    float64
	Best       int
	ActiveDays int
}

// weekValues maps the seven days starting at start to their recorded
// values; days without an entry get 0.
func weekValues(entries []models.ProgressEntry, start time.Time) []DayValue {
	byDate := make(map[string]int, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e.ProgressValue
	}
	days := timeutil.WeekDays(start)
	values := make([]DayValue, len(days))
	for i, d := range days {
		values[i] = DayValue{Date: d, Value: byDate[timeutil.FormatDate(d)]}
	}
	return values
}

func summarizeWeek(values []DayValue) WeekSummary {
	var sum WeekSummary
	for _, v := range values {
		sum.Total += v.Value
		if v.Value > sum.Best {
			sum.Best = v.Value
		}
		if v.Value > 0 {
			sum.ActiveDays++
		}
	}
	sum.Average = float64(sum.Total) / float64(timeutil.DaysPerWeek)
	return sum
}

// WeeklyModel derives a 7-day series for one task and week offset from the
// task's full progress history. Offset 0 is the current week; higher values
// go further back. Changing the offset re-derives locally; changing the
// task re-fetches its history.
type WeeklyModel struct {
	svc            Service
	tasks          []models.LifeTask
	taskIdx        int
	offset         int
	entries        []models.ProgressEntry
	loading        bool
	historyLoading bool
	tasksSeq       int
	histSeq        int
	status         string
	statusIsErr    bool
	width          int
	height         int
}

func NewWeeklyModel(svc Service) WeeklyModel {
	return WeeklyModel{svc: svc, loading: true, tasksSeq: nextSeq()}
}

func (m WeeklyModel) Init() tea.Cmd {
	return loadTasksCmd(m.svc, m.tasksSeq)
}

func (m *WeeklyModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

func (m WeeklyModel) selectedTask() (models.LifeTask, bool) {
	if m.taskIdx < 0 || m.taskIdx >= len(m.tasks) {
		return models.LifeTask{}, false
	}
	return m.tasks[m.taskIdx], true
}

func (m WeeklyModel) fetchHistory() (WeeklyModel, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	m.histSeq = nextSeq()
	m.historyLoading = true
	m.entries = nil
	return m, loadHistoryCmd(m.svc, m.histSeq, task.ID)
}

func (m WeeklyModel) Update(msg tea.Msg) (WeeklyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.seq != m.tasksSeq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			util.LogError("loading tasks for weekly view", msg.err)
			m.status, m.statusIsErr = "Could not load tasks.", true
			return m, nil
		}
		m.tasks = msg.tasks
		if m.taskIdx >= len(m.tasks) {
			m.taskIdx = 0
		}
		return m.fetchHistory()

	case historyLoadedMsg:
		if msg.seq != m.histSeq {
			return m, nil
		}
		m.historyLoading = false
		if msg.err != nil {
			util.LogError("loading progress history", msg.err)
			m.status, m.statusIsErr = "Could not load progress history.", true
			return m, nil
		}
		m.entries = msg.entries
		return m, nil

	case reportSavedMsg:
		if msg.err != nil {
			util.LogError("writing weekly report", msg.err)
			m.status, m.statusIsErr = "Report export failed.", true
		} else {
			m.status, m.statusIsErr = "Report written to "+msg.path, false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.taskIdx > 0 {
				m.taskIdx--
				return m.fetchHistory()
			}
		case "down", "j":
			if m.taskIdx < len(m.tasks)-1 {
				m.taskIdx++
				return m.fetchHistory()
			}
		case "left", "h":
			m.offset++
		case "right", "l":
			if m.offset > 0 {
				m.offset--
			}
		case "e":
			return m.exportReport()
		}
	}
	return m, nil
}

func (m WeeklyModel) exportReport() (WeeklyModel, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok || m.historyLoading {
		return m, nil
	}
	start := timeutil.WeekStart(time.Now(), m.offset)
	values := weekValues(m.entries, start)
	return m, writeReportCmd(task, start, values, summarizeWeek(values))
}
