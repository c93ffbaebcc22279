package models

import "time"

// JournalEntry is one dated journal record. The server enforces at most one
// entry per calendar date.
type JournalEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LifeTask is a user-defined goal with a numeric daily target.
type LifeTask struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TargetValue int       `json:"target_value"`
	CreatedAt   time.Time `json:"created_at"`
}

// LifeTaskInput is the request body for creating or updating a life task.
type LifeTaskInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TargetValue int    `json:"target_value"`
}

// ProgressEntry is one day's logged value toward a life task's target.
// The server keeps at most one entry per (task, date) pair; posting again
// for the same pair updates it in place.
type ProgressEntry struct {
	ID            string    `json:"id"`
	TaskID        string    `json:"task_id"`
	Date          string    `json:"date"`
	ProgressValue int       `json:"progress_value"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProgressInput is the upsert body for POST /progress-entries.
type ProgressInput struct {
	TaskID        string `json:"task_id"`
	Date          string `json:"date"`
	ProgressValue int    `json:"progress_value"`
}

// DashboardStats is the server-computed aggregate shown on the landing view.
type DashboardStats struct {
	TotalJournalEntries int  `json:"total_journal_entries"`
	TotalLifeTasks      int  `json:"total_life_tasks"`
	HasTodayJournal     bool `json:"has_today_journal"`
	TodayProgressCount  int  `json:"today_progress_count"`
}

// TaskProgress is a client-side view of one task's value for today. Failed
// distinguishes "the fetch failed" from a genuine zero, so the two never
// render the same.
type TaskProgress struct {
	Value  int
	Failed bool
}

// ProgressPercent returns value/target as a whole percentage clamped to
// [0, 100]. A non-positive target yields 0.
func ProgressPercent(value, target int) int {
	if target <= 0 || value <= 0 {
		return 0
	}
	if value >= target {
		return 100
	}
	return value * 100 / target
}
