package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
	"lifetrack/internal/util"
)

// Every network call runs inside a tea.Cmd and reports back as one of the
// messages below, so the event loop never blocks on I/O. Fetch messages
// carry the sequence number they were issued under; views drop responses
// whose sequence no longer matches, which kills the stale-response race on
// fast navigation.

// fetchSeq hands out sequence numbers across all views and instances, so a
// response issued by a discarded sub-model can never match a fresh one.
// Only ever touched from the event-loop goroutine.
var fetchSeq int

func nextSeq() int {
	fetchSeq++
	return fetchSeq
}

type pingMsg struct{ err error }

type statsLoadedMsg struct {
	seq   int
	stats models.DashboardStats
	err   error
}

type entriesLoadedMsg struct {
	seq     int
	entries []models.JournalEntry
	err     error
}

type entryLoadedMsg struct {
	seq   int
	date  string
	entry models.JournalEntry
	err   error // api.ErrNotFound means "no entry for this date"
}

type entrySavedMsg struct {
	date  string
	entry models.JournalEntry
	err   error
}

type entryDeletedMsg struct {
	date string
	err  error
}

type tasksLoadedMsg struct {
	seq   int
	tasks []models.LifeTask
	err   error
}

type taskMutatedMsg struct {
	action string // "create", "update", "delete"
	err    error
}

type todayProgressMsg struct {
	seq    int
	values map[string]models.TaskProgress
}

type progressSavedMsg struct {
	taskID     string
	value      int
	prev       int  // committed value to roll back to on failure
	prevFailed bool // restore the failed-fetch marker alongside prev
	err        error
}

type historyLoadedMsg struct {
	seq     int
	taskID  string
	entries []models.ProgressEntry
	err     error
}

type reportSavedMsg struct {
	path string
	err  error
}

// navigateMsg asks the app shell to switch views.
type navigateMsg struct{ view View }

func navigateCmd(v View) tea.Cmd {
	return func() tea.Msg { return navigateMsg{view: v} }
}

func pingCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		return pingMsg{err: svc.Ping(context.Background())}
	}
}

func loadStatsCmd(svc Service, seq int) tea.Cmd {
	return func() tea.Msg {
		stats, err := svc.DashboardStats(context.Background())
		return statsLoadedMsg{seq: seq, stats: stats, err: err}
	}
}

func loadEntriesCmd(svc Service, seq int) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.JournalEntries(context.Background())
		return entriesLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

func loadEntryCmd(svc Service, seq int, date string) tea.Cmd {
	return func() tea.Msg {
		entry, err := svc.JournalEntryByDate(context.Background(), date)
		return entryLoadedMsg{seq: seq, date: date, entry: entry, err: err}
	}
}

func createEntryCmd(svc Service, date, content string) tea.Cmd {
	return func() tea.Msg {
		entry, err := svc.CreateJournalEntry(context.Background(), date, content)
		return entrySavedMsg{date: date, entry: entry, err: err}
	}
}

func updateEntryCmd(svc Service, date, content string) tea.Cmd {
	return func() tea.Msg {
		entry, err := svc.UpdateJournalEntry(context.Background(), date, content)
		return entrySavedMsg{date: date, entry: entry, err: err}
	}
}

func deleteEntryCmd(svc Service, date string) tea.Cmd {
	return func() tea.Msg {
		return entryDeletedMsg{date: date, err: svc.DeleteJournalEntry(context.Background(), date)}
	}
}

func loadTasksCmd(svc Service, seq int) tea.Cmd {
	return func() tea.Msg {
		tasks, err := svc.LifeTasks(context.Background())
		return tasksLoadedMsg{seq: seq, tasks: tasks, err: err}
	}
}

func createTaskCmd(svc Service, in models.LifeTaskInput) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.CreateLifeTask(context.Background(), in)
		return taskMutatedMsg{action: "create", err: err}
	}
}

func updateTaskCmd(svc Service, id string, in models.LifeTaskInput) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.UpdateLifeTask(context.Background(), id, in)
		return taskMutatedMsg{action: "update", err: err}
	}
}

func deleteTaskCmd(svc Service, id string) tea.Cmd {
	return func() tea.Msg {
		return taskMutatedMsg{action: "delete", err: svc.DeleteLifeTask(context.Background(), id)}
	}
}

// loadTodayProgressCmd fans out one history request per task, waits for all
// of them to settle, and reports a single map. A failed fetch becomes an
// explicit Failed marker for that task, never a silent zero.
func loadTodayProgressCmd(svc Service, seq int, tasks []models.LifeTask) tea.Cmd {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return func() tea.Msg {
		today := timeutil.Today()
		values := make(map[string]models.TaskProgress, len(ids))
		var mu sync.Mutex
		var wg sync.WaitGroup
		for _, id := range ids {
			wg.Add(1)
			go func(taskID string) {
				defer wg.Done()
				var p models.TaskProgress
				entries, err := svc.ProgressHistory(context.Background(), taskID)
				if err != nil {
					util.LogError("loading today's progress", err)
					p.Failed = true
				} else {
					for _, e := range entries {
						if e.Date == today {
							p.Value = e.ProgressValue
							break
						}
					}
				}
				mu.Lock()
				values[taskID] = p
				mu.Unlock()
			}(id)
		}
		wg.Wait()
		return todayProgressMsg{seq: seq, values: values}
	}
}

func saveProgressCmd(svc Service, taskID string, value, prev int, prevFailed bool) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.SaveProgress(context.Background(), taskID, timeutil.Today(), value)
		return progressSavedMsg{taskID: taskID, value: value, prev: prev, prevFailed: prevFailed, err: err}
	}
}

func loadHistoryCmd(svc Service, seq int, taskID string) tea.Cmd {
	return func() tea.Msg {
		entries, err := svc.ProgressHistory(context.Background(), taskID)
		return historyLoadedMsg{seq: seq, taskID: taskID, entries: entries, err: err}
	}
}
