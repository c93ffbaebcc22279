package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/api"
	"lifetrack/internal/models"
)

// mockService is a hand-rolled Service double: canned returns plus call
// counters. The mutex matters because today's-progress loading hits
// ProgressHistory from several goroutines at once.
type mockService struct {
	mu    sync.Mutex
	calls map[string]int

	pingErr error

	stats    models.DashboardStats
	statsErr error

	entries       []models.JournalEntry
	entriesErr    error
	entriesByDate map[string]models.JournalEntry
	entryErr      error
	saveEntryErr  error
	delEntryErr   error

	tasks       []models.LifeTask
	tasksErr    error
	taskInputs  []models.LifeTaskInput
	taskErr     error
	delTaskErr  error
	history     map[string][]models.ProgressEntry
	historyErrs map[string]error
	saved       []models.ProgressInput
	saveErr     error
}

func newMockService() *mockService {
	return &mockService{
		calls:         make(map[string]int),
		entriesByDate: make(map[string]models.JournalEntry),
		history:       make(map[string][]models.ProgressEntry),
		historyErrs:   make(map[string]error),
	}
}

func (s *mockService) count(name string) {
	s.mu.Lock()
	s.calls[name]++
	s.mu.Unlock()
}

func (s *mockService) callCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func (s *mockService) Ping(ctx context.Context) error {
	s.count("Ping")
	return s.pingErr
}

func (s *mockService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	s.count("DashboardStats")
	return s.stats, s.statsErr
}

func (s *mockService) JournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	s.count("JournalEntries")
	return s.entries, s.entriesErr
}

func (s *mockService) JournalEntryByDate(ctx context.Context, date string) (models.JournalEntry, error) {
	s.count("JournalEntryByDate")
	if s.entryErr != nil {
		return models.JournalEntry{}, s.entryErr
	}
	if e, ok := s.entriesByDate[date]; ok {
		return e, nil
	}
	return models.JournalEntry{}, api.ErrNotFound
}

func (s *mockService) CreateJournalEntry(ctx context.Context, date, content string) (models.JournalEntry, error) {
	s.count("CreateJournalEntry")
	if s.saveEntryErr != nil {
		return models.JournalEntry{}, s.saveEntryErr
	}
	return models.JournalEntry{ID: "e-" + date, Date: date, Content: content}, nil
}

func (s *mockService) UpdateJournalEntry(ctx context.Context, date, content string) (models.JournalEntry, error) {
	s.count("UpdateJournalEntry")
	if s.saveEntryErr != nil {
		return models.JournalEntry{}, s.saveEntryErr
	}
	return models.JournalEntry{ID: "e-" + date, Date: date, Content: content}, nil
}

func (s *mockService) DeleteJournalEntry(ctx context.Context, date string) error {
	s.count("DeleteJournalEntry")
	return s.delEntryErr
}

func (s *mockService) LifeTasks(ctx context.Context) ([]models.LifeTask, error) {
	s.count("LifeTasks")
	return s.tasks, s.tasksErr
}

func (s *mockService) CreateLifeTask(ctx context.Context, in models.LifeTaskInput) (models.LifeTask, error) {
	s.count("CreateLifeTask")
	s.mu.Lock()
	s.taskInputs = append(s.taskInputs, in)
	s.mu.Unlock()
	if s.taskErr != nil {
		return models.LifeTask{}, s.taskErr
	}
	return models.LifeTask{ID: "t-new", Name: in.Name, Description: in.Description, Category: in.Category, TargetValue: in.TargetValue}, nil
}

func (s *mockService) UpdateLifeTask(ctx context.Context, id string, in models.LifeTaskInput) (models.LifeTask, error) {
	s.count("UpdateLifeTask")
	s.mu.Lock()
	s.taskInputs = append(s.taskInputs, in)
	s.mu.Unlock()
	if s.taskErr != nil {
		return models.LifeTask{}, s.taskErr
	}
	return models.LifeTask{ID: id, Name: in.Name, Description: in.Description, Category: in.Category, TargetValue: in.TargetValue}, nil
}

func (s *mockService) DeleteLifeTask(ctx context.Context, id string) error {
	s.count("DeleteLifeTask")
	return s.delTaskErr
}

func (s *mockService) ProgressHistory(ctx context.Context, taskID string) ([]models.ProgressEntry, error) {
	s.count("ProgressHistory")
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.historyErrs[taskID]; err != nil {
		return nil, err
	}
	return s.history[taskID], nil
}

func (s *mockService) SaveProgress(ctx context.Context, taskID, date string, value int) (models.ProgressEntry, error) {
	s.count("SaveProgress")
	s.mu.Lock()
	s.saved = append(s.saved, models.ProgressInput{TaskID: taskID, Date: date, ProgressValue: value})
	s.mu.Unlock()
	if s.saveErr != nil {
		return models.ProgressEntry{}, s.saveErr
	}
	return models.ProgressEntry{ID: "p-" + taskID, TaskID: taskID, Date: date, ProgressValue: value}, nil
}

// runCmd executes a command synchronously and flattens batches into the
// messages they produce, in order.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
