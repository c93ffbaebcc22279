package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/api"
	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
	"lifetrack/internal/util"
)

type journalMode int

const (
	journalViewing journalMode = iota
	journalEditing
)

// JournalModel is one entry per calendar date. The state machine per
// selected date: no entry opens an empty editor, an existing entry opens in
// viewing mode, `e` switches to editing, a save returns to viewing.
type JournalModel struct {
	svc              Service
	date             time.Time
	mode             journalMode
	hasEntry         bool
	content          string // last persisted content for the selected date
	editor           textarea.Model
	entries          []models.JournalEntry
	loading          bool
	confirmingDelete bool
	entrySeq         int
	listSeq          int
	status           string
	statusIsErr      bool
	width            int
	height           int
}

func NewJournalModel(svc Service) JournalModel {
	ed := textarea.New()
	ed.Placeholder = "What happened today?"
	ed.SetWidth(60)
	ed.SetHeight(12)

	return JournalModel{
		svc:      svc,
		date:     timeutil.Midnight(time.Now()),
		editor:   ed,
		loading:  true,
		entrySeq: nextSeq(),
		listSeq:  nextSeq(),
	}
}

func (m JournalModel) Init() tea.Cmd {
	return tea.Batch(
		loadEntryCmd(m.svc, m.entrySeq, timeutil.FormatDate(m.date)),
		loadEntriesCmd(m.svc, m.listSeq),
	)
}

func (m *JournalModel) SetSize(w, h int) {
	m.width, m.height = w, h
	if w > 40 {
		m.editor.SetWidth(w - 36)
	}
}

// InInputMode reports whether the editor owns the keyboard.
func (m JournalModel) InInputMode() bool {
	return m.mode == journalEditing || m.confirmingDelete
}

func (m *JournalModel) setStatusError(text string) {
	m.status, m.statusIsErr = text, true
}

func (m *JournalModel) setStatus(text string) {
	m.status, m.statusIsErr = text, false
}

// selectDate moves to another calendar date and fetches its entry. The
// bumped sequence makes any in-flight response for the old date stale.
func (m JournalModel) selectDate(d time.Time) (JournalModel, tea.Cmd) {
	m.date = d
	m.entrySeq = nextSeq()
	m.loading = true
	m.confirmingDelete = false
	m.mode = journalViewing
	m.editor.Blur()
	m.status = ""
	return m, loadEntryCmd(m.svc, m.entrySeq, timeutil.FormatDate(d))
}

func (m JournalModel) refreshList() (JournalModel, tea.Cmd) {
	m.listSeq = nextSeq()
	return m, loadEntriesCmd(m.svc, m.listSeq)
}

func (m JournalModel) save() (JournalModel, tea.Cmd) {
	if strings.TrimSpace(m.editor.Value()) == "" {
		m.setStatusError("Journal content cannot be empty.")
		return m, nil
	}
	// An existing entry means PUT; the server rejects a second POST for the
	// same date.
	if m.hasEntry {
		return m, updateEntryCmd(m.svc, timeutil.FormatDate(m.date), m.editor.Value())
	}
	return m, createEntryCmd(m.svc, timeutil.FormatDate(m.date), m.editor.Value())
}

func (m JournalModel) Update(msg tea.Msg) (JournalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case entryLoadedMsg:
		if msg.seq != m.entrySeq {
			return m, nil
		}
		m.loading = false
		switch {
		case errors.Is(msg.err, api.ErrNotFound):
			m.hasEntry = false
			m.content = ""
			m.editor.Reset()
			m.mode = journalEditing
			return m, m.editor.Focus()
		case msg.err != nil:
			util.LogError("loading journal entry", msg.err)
			m.setStatusError("Could not load this date's entry.")
			return m, nil
		default:
			m.hasEntry = true
			m.content = msg.entry.Content
			m.editor.SetValue(msg.entry.Content)
			m.editor.Blur()
			m.mode = journalViewing
			return m, nil
		}

	case entriesLoadedMsg:
		if msg.seq != m.listSeq {
			return m, nil
		}
		if msg.err != nil {
			util.LogError("loading journal entry list", msg.err)
			return m, nil
		}
		m.entries = msg.entries
		return m, nil

	case entrySavedMsg:
		if msg.err != nil {
			util.LogError("saving journal entry", msg.err)
			m.setStatusError("Save failed. Your text is still here; try again.")
			return m, nil
		}
		m.hasEntry = true
		m.content = msg.entry.Content
		m.mode = journalViewing
		m.editor.Blur()
		m.setStatus("Saved.")
		return m.refreshList()

	case entryDeletedMsg:
		if msg.err != nil {
			util.LogError("deleting journal entry", msg.err)
			m.setStatusError("Delete failed.")
			return m, nil
		}
		m.hasEntry = false
		m.content = ""
		m.editor.Reset()
		m.mode = journalEditing
		m.setStatus("Entry deleted.")
		var refreshed JournalModel
		var cmd tea.Cmd
		refreshed, cmd = m.refreshList()
		return refreshed, tea.Batch(cmd, refreshed.editor.Focus())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m JournalModel) handleKey(msg tea.KeyMsg) (JournalModel, tea.Cmd) {
	if m.confirmingDelete {
		switch msg.String() {
		case "y", "enter":
			m.confirmingDelete = false
			return m, deleteEntryCmd(m.svc, timeutil.FormatDate(m.date))
		case "n", "esc":
			m.confirmingDelete = false
			return m, nil
		}
		return m, nil
	}

	if m.mode == journalEditing {
		switch msg.String() {
		case "ctrl+s":
			return m.save()
		case "esc":
			if m.hasEntry {
				m.editor.SetValue(m.content)
				m.editor.Blur()
				m.mode = journalViewing
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	if m.loading {
		return m, nil
	}

	switch msg.String() {
	case "e", "enter":
		m.mode = journalEditing
		return m, m.editor.Focus()
	case "d":
		if m.hasEntry {
			m.confirmingDelete = true
		}
		return m, nil
	case "left", "h":
		return m.selectDate(m.date.AddDate(0, 0, -1))
	case "right", "l":
		return m.selectDate(m.date.AddDate(0, 0, 1))
	case "pgup", "[":
		return m.selectDate(m.date.AddDate(0, -1, 0))
	case "pgdown", "]":
		return m.selectDate(m.date.AddDate(0, 1, 0))
	case "t":
		return m.selectDate(timeutil.Midnight(time.Now()))
	}
	return m, nil
}
