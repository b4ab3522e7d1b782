package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/storage"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "countdown",
		Short: "A small countdown timer for the terminal",
		Long: `Countdown is a terminal timer: enter hours, minutes and seconds,
hit space to start or pause, and mark a time you want to remember.
The timer state survives restarts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("stdout is not a terminal")
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			cfg := config.Load()
			model := tui.NewModel(store, cfg)

			p := tea.NewProgram(model)
			final, err := p.Run()
			if err != nil {
				return err
			}

			// Serialize-at-shutdown: whatever state the program ended
			// in is what the next start restores from.
			if fm, ok := final.(tui.Model); ok {
				util.LogError("save timer state", fm.SaveState())
			}
			return nil
		},
	}
}

func openStore() (*storage.Store, error) {
	dbRoot := util.DataDir(config.AppName)
	if err := os.MkdirAll(dbRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return storage.Open(filepath.Join(dbRoot, config.DBFileName))
}
