package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var all bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return fmt.Errorf("activity history is disabled in the configuration")
			}

			username := ""
			if !all {
				if err := ctx.withAccounts(func(mgr *accounts.Manager) error {
					user, err := ctx.requireUser(mgr)
					if err != nil {
						return err
					}
					username = user.Username
					return nil
				}); err != nil {
					return err
				}
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			var events []history.Event
			if all {
				events, err = store.Recent(cmd.Context(), limit)
			} else {
				events, err = store.ForUser(cmd.Context(), username, limit)
			}
			if err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded activity")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, event := range events {
				rows = append(rows, []string{
					event.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					event.Username,
					event.Action,
					event.Subject,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"When", "User", "Action", "Subject"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show activity for every account, not just yours")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of events to show")

	return cmd
}
