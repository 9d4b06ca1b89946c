package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/history"
	"kinolog/internal/library"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the shared sample catalog",
	}
	cmd.AddCommand(newCatalogListCommand(ctx))
	cmd.AddCommand(newCatalogImportCommand(ctx))
	cmd.AddCommand(newCatalogCommentCommand(ctx))
	return cmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sample catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			entries := cat.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(movieHeaders, movieRows(entries), movieAligns))
			return nil
		},
	}
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <title>",
		Short: "Copy a catalog entry into your collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				movie, err := cat.NewPersonalCopy(args[0])
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				if err := lib.Add(movie); err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionCatalogImport, movie.Title, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into your collection\n", movie.Title)
				return nil
			})
		},
	}
}

func newCatalogCommentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <title> <text>",
		Short: "Comment on a catalog entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				if err := cat.AddComment(args[0], user.Username, args[1]); err != nil {
					return err
				}
				ctx.recordEvent(user.Username, history.ActionCommentAdded, args[0], "catalog")
				fmt.Fprintf(cmd.OutOrStdout(), "Comment added to catalog entry %s\n", args[0])
				return nil
			})
		},
	}
}
