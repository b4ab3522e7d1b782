package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/report"
	"github.com/akyairhashvil/countdown/internal/util"
)

// newExportCommand writes the recorded session history to a PDF.
func newExportCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session history as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			sessions, err := store.GetSessions()
			if err != nil {
				return err
			}

			path := outputFile
			if path == "" {
				dir := util.ReportsDir(config.AppName)
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create reports dir: %w", err)
				}
				path = filepath.Join(dir, "sessions.pdf")
			}

			if err := report.Generate(sessions, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: the reports directory)")
	return cmd
}
