package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/export"
	"kinolog/internal/history"
	"kinolog/internal/library"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your collection to a CSV or text file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "csv" && format != "txt" {
				return fmt.Errorf("unknown format %q (allowed: csv, txt)", format)
			}
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				movies := lib.List()

				path := output
				if path == "" {
					cfg, err := ctx.ensureConfig()
					if err != nil {
						return err
					}
					name := fmt.Sprintf("%s-%s.%s", user.Username, time.Now().Format("20060102-150405"), format)
					path = filepath.Join(cfg.Paths.ExportDir, name)
				}

				if err := export.ToFile(path, format, movies); err != nil {
					return err
				}
				ctx.recordEvent(user.Username, history.ActionExport, path, format)
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d movies to %s\n", len(movies), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or txt")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default under the export directory)")

	return cmd
}
