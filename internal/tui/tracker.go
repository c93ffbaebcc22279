package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/config"
	"lifetrack/internal/models"
	"lifetrack/internal/util"
)

type trackerMode int

const (
	trackerBrowsing trackerMode = iota
	trackerForm
	trackerConfirmDelete
)

// taskForm holds the create/edit inputs. An empty editingID means create.
type taskForm struct {
	editingID   string
	name        textinput.Model
	description textinput.Model
	target      textinput.Model
	categoryIdx int
	focus       int // 0 name, 1 description, 2 category, 3 target
}

func newTaskForm() taskForm {
	name := textinput.New()
	name.Placeholder = "Task name"
	name.CharLimit = config.MaxTaskNameLength
	name.Width = 40

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = config.MaxDescriptionLength
	desc.Width = 40

	target := textinput.New()
	target.Placeholder = strconv.Itoa(config.DefaultTargetValue)
	target.CharLimit = 6
	target.Width = 10

	name.Focus()
	return taskForm{name: name, description: desc, target: target}
}

// TrackerModel is the life-task view: CRUD over goal definitions plus a
// per-task slider committing today's progress.
type TrackerModel struct {
	svc           Service
	tasks         []models.LifeTask
	values        map[string]models.TaskProgress
	cursor        int
	loading       bool
	valuesLoading bool
	seq           int
	mode          trackerMode
	form          taskForm
	bar           progress.Model
	status        string
	statusIsErr   bool
	width         int
	height        int
}

func NewTrackerModel(svc Service) TrackerModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 24
	return TrackerModel{
		svc:     svc,
		values:  make(map[string]models.TaskProgress),
		loading: true,
		seq:     nextSeq(),
		bar:     bar,
	}
}

func (m TrackerModel) Init() tea.Cmd {
	return loadTasksCmd(m.svc, m.seq)
}

func (m *TrackerModel) SetSize(w, h int) {
	m.width, m.height = w, h
}

func (m TrackerModel) InInputMode() bool {
	return m.mode != trackerBrowsing
}

func (m *TrackerModel) setStatusError(text string) {
	m.status, m.statusIsErr = text, true
}

func (m *TrackerModel) setStatus(text string) {
	m.status, m.statusIsErr = text, false
}

func (m TrackerModel) selectedTask() (models.LifeTask, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return models.LifeTask{}, false
	}
	return m.tasks[m.cursor], true
}

// refresh reloads the task list; today's values follow once the list lands.
func (m TrackerModel) refresh() (TrackerModel, tea.Cmd) {
	m.seq = nextSeq()
	m.loading = true
	return m, loadTasksCmd(m.svc, m.seq)
}

func (m TrackerModel) Update(msg tea.Msg) (TrackerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			util.LogError("loading life tasks", msg.err)
			m.setStatusError("Could not load tasks.")
			return m, nil
		}
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = len(m.tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		if len(m.tasks) == 0 {
			m.values = make(map[string]models.TaskProgress)
			return m, nil
		}
		m.valuesLoading = true
		return m, loadTodayProgressCmd(m.svc, m.seq, m.tasks)

	case todayProgressMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.valuesLoading = false
		m.values = msg.values
		return m, nil

	case taskMutatedMsg:
		if msg.err != nil {
			util.LogError("mutating life task", msg.err)
			m.setStatusError("Request failed; nothing was changed locally.")
			return m, nil
		}
		switch msg.action {
		case "create":
			m.setStatus("Task created.")
		case "update":
			m.setStatus("Task updated.")
		case "delete":
			m.setStatus("Task deleted.")
		}
		return m.refresh()

	case progressSavedMsg:
		if msg.err != nil {
			util.LogError("saving progress", msg.err)
			// Roll the optimistic value back so the bar never lies about
			// what the server holds.
			m.values[msg.taskID] = models.TaskProgress{Value: msg.prev, Failed: msg.prevFailed}
			m.setStatusError("Could not save progress; value reverted.")
			return m, nil
		}
		m.values[msg.taskID] = models.TaskProgress{Value: msg.value}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case trackerForm:
			return m.updateForm(msg)
		case trackerConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}
	return m, nil
}

func (m TrackerModel) updateBrowsing(msg tea.KeyMsg) (TrackerModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "n":
		m.form = newTaskForm()
		m.mode = trackerForm
		m.status = ""
	case "e":
		if task, ok := m.selectedTask(); ok {
			m.form = newTaskForm()
			m.form.editingID = task.ID
			m.form.name.SetValue(task.Name)
			m.form.description.SetValue(task.Description)
			m.form.target.SetValue(strconv.Itoa(task.TargetValue))
			m.form.categoryIdx = categoryIndex(task.Category)
			m.mode = trackerForm
			m.status = ""
		}
	case "d":
		if _, ok := m.selectedTask(); ok {
			m.mode = trackerConfirmDelete
		}
	case "left", "h":
		return m.adjustProgress(-config.SliderStep)
	case "right", "l":
		return m.adjustProgress(config.SliderStep)
	case "H":
		return m.adjustProgress(-config.SliderBigStep)
	case "L":
		return m.adjustProgress(config.SliderBigStep)
	}
	return m, nil
}

// adjustProgress applies the slider delta optimistically and commits it
// immediately; the saved message carries what to restore on failure.
func (m TrackerModel) adjustProgress(delta int) (TrackerModel, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	cur := m.values[task.ID]
	next := util.Clamp(cur.Value+delta, 0, task.TargetValue)
	if next == cur.Value && !cur.Failed {
		return m, nil
	}
	m.values[task.ID] = models.TaskProgress{Value: next}
	return m, saveProgressCmd(m.svc, task.ID, next, cur.Value, cur.Failed)
}

func (m TrackerModel) updateConfirmDelete(msg tea.KeyMsg) (TrackerModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = trackerBrowsing
		if task, ok := m.selectedTask(); ok {
			return m, deleteTaskCmd(m.svc, task.ID)
		}
	case "n", "esc":
		m.mode = trackerBrowsing
	}
	return m, nil
}

func (m TrackerModel) updateForm(msg tea.KeyMsg) (TrackerModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = trackerBrowsing
		return m, nil
	case "enter":
		return m.submitForm()
	case "tab", "down":
		m.form.focus = (m.form.focus + 1) % 4
		m.syncFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.form.focus = (m.form.focus + 3) % 4
		m.syncFormFocus()
		return m, nil
	case "left", "right":
		if m.form.focus == 2 {
			n := len(config.Categories)
			if msg.String() == "left" {
				m.form.categoryIdx = (m.form.categoryIdx + n - 1) % n
			} else {
				m.form.categoryIdx = (m.form.categoryIdx + 1) % n
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case 0:
		m.form.name, cmd = m.form.name.Update(msg)
	case 1:
		m.form.description, cmd = m.form.description.Update(msg)
	case 3:
		m.form.target, cmd = m.form.target.Update(msg)
	}
	return m, cmd
}

func (m *TrackerModel) syncFormFocus() {
	m.form.name.Blur()
	m.form.description.Blur()
	m.form.target.Blur()
	switch m.form.focus {
	case 0:
		m.form.name.Focus()
	case 1:
		m.form.description.Focus()
	case 3:
		m.form.target.Focus()
	}
}

func (m TrackerModel) submitForm() (TrackerModel, tea.Cmd) {
	name := strings.TrimSpace(m.form.name.Value())
	if name == "" {
		m.setStatusError("Task name is required.")
		return m, nil
	}
	target := config.DefaultTargetValue
	if raw := strings.TrimSpace(m.form.target.Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			m.setStatusError("Target must be a positive number.")
			return m, nil
		}
		target = n
	}
	in := models.LifeTaskInput{
		Name:        name,
		Description: strings.TrimSpace(m.form.description.Value()),
		Category:    config.Categories[m.form.categoryIdx],
		TargetValue: target,
	}
	m.mode = trackerBrowsing
	if m.form.editingID != "" {
		return m, updateTaskCmd(m.svc, m.form.editingID, in)
	}
	return m, createTaskCmd(m.svc, in)
}

func categoryIndex(category string) int {
	for i, c := range config.Categories {
		if c == category {
			return i
		}
	}
	return 0
}
