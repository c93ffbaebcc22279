package tui

import (
	"context"

	"lifetrack/internal/models"
)

// Service defines the remote API surface the views require. *api.Client
// implements it; tests substitute hand mocks.
type Service interface {
	Ping(ctx context.Context) error
	DashboardStats(ctx context.Context) (models.DashboardStats, error)

	JournalEntries(ctx context.Context) ([]models.JournalEntry, error)
	JournalEntryByDate(ctx context.Context, date string) (models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, date, content string) (models.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, date, content string) (models.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, date string) error

	LifeTasks(ctx context.Context) ([]models.LifeTask, error)
	CreateLifeTask(ctx context.Context, in models.LifeTaskInput) (models.LifeTask, error)
	UpdateLifeTask(ctx context.Context, id string, in models.LifeTaskInput) (models.LifeTask, error)
	DeleteLifeTask(ctx context.Context, id string) error

	ProgressHistory(ctx context.Context, taskID string) ([]models.ProgressEntry, error)
	SaveProgress(ctx context.Context, taskID, date string, value int) (models.ProgressEntry, error)
}
