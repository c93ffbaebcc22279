package commands

import (
	"context"

	"github.com/spf13/cobra"

	"lifetrack/internal/api"
	"lifetrack/internal/config"
	"lifetrack/internal/printers"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard stats and exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := api.NewClient(cfg.BaseURL, cfg.Timeout)
			stats, err := client.DashboardStats(context.Background())
			if err != nil {
				return err
			}
			printers.Stats(stats)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
