package commands

import (
	"context"
	"sync"

	"github.com/spf13/cobra"

	"lifetrack/internal/api"
	"lifetrack/internal/config"
	"lifetrack/internal/models"
	"lifetrack/internal/printers"
	"lifetrack/internal/timeutil"
)

func addTasks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List life tasks with today's progress and exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := api.NewClient(cfg.BaseURL, cfg.Timeout)
			ctx := context.Background()

			tasks, err := client.LifeTasks(ctx)
			if err != nil {
				return err
			}
			printers.Tasks(tasks, todayValues(ctx, client, tasks))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

// todayValues mirrors the TUI's fan-out: one history fetch per task, a
// failure becomes a marker rather than a silent zero.
func todayValues(ctx context.Context, client *api.Client, tasks []models.LifeTask) map[string]models.TaskProgress {
	today := timeutil.Today()
	values := make(map[string]models.TaskProgress, len(tasks))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			var p models.TaskProgress
			entries, err := client.ProgressHistory(ctx, id)
			if err != nil {
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
			values[id] = p
			mu.Unlock()
		}(task.ID)
	}
	wg.Wait()
	return values
}
