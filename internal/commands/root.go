package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/api"
	"lifetrack/internal/config"
	"lifetrack/internal/tui"
	"lifetrack/internal/util"
)

// runUI starts the interactive TUI. The log goes to a file because stdout
// belongs to bubbletea.
func runUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataDir, 0o755)
	if err := util.InitLogging(filepath.Join(dataDir, config.LogFileName)); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer util.CloseLogging()

	client := api.NewClient(cfg.BaseURL, cfg.Timeout)
	model := tui.NewMainModel(client, cfg.Theme)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
