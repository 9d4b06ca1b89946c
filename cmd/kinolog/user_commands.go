package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/history"
	"kinolog/internal/media"
)

func newUserCommand(ctx *commandContext) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	userCmd.AddCommand(newUserListCommand(ctx))
	userCmd.AddCommand(newUserDeleteCommand(ctx))
	userCmd.AddCommand(newUserPasswdCommand(ctx))

	return userCmd
}

func newUserListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				users := mgr.Users()
				if len(users) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No registered users")
					return nil
				}
				rows := make([][]string, 0, len(users))
				for _, user := range users {
					rows = append(rows, []string{
						user.Username,
						user.Email,
						strconv.Itoa(len(user.Movies)),
						user.CreatedAt.Format(media.TimeLayout),
						user.LastLogin.Format(media.TimeLayout),
					})
				}
				out := renderTable(
					[]string{"Username", "Email", "Movies", "Created", "Last login"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func newUserDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete an account and its movie collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := mgr.Delete(args[0])
				if err != nil {
					return err
				}
				store, err := ctx.sessionStore()
				if err != nil {
					return err
				}
				if err := store.ClearIfUser(user.Username); err != nil {
					return err
				}
				ctx.recordEvent(user.Username, history.ActionUserDeleted, "", "")
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", user.Username)
				return nil
			})
		},
	}
}

func newUserPasswdCommand(ctx *commandContext) *cobra.Command {
	var oldPassword string
	var newPassword string

	cmd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Change an account password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				oldPw, err := readPassword(cmd, oldPassword, "Current password: ")
				if err != nil {
					return err
				}
				newPw, err := readPassword(cmd, newPassword, "New password: ")
				if err != nil {
					return err
				}
				if err := mgr.ChangePassword(args[0], oldPw, newPw); err != nil {
					return err
				}
				ctx.recordEvent(args[0], history.ActionPasswordChange, "", "")
				fmt.Fprintf(cmd.OutOrStdout(), "Password changed for %s\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&oldPassword, "old-password", "", "Current password (prompted when omitted)")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "New password (prompted when omitted)")

	return cmd
}
