package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/history"
	"kinolog/internal/media"
)

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var password string
	var email string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				pw, err := readPassword(cmd, password, "Password: ")
				if err != nil {
					return err
				}
				user, err := mgr.Register(args[0], pw, email)
				if err != nil {
					return err
				}
				ctx.recordEvent(user.Username, history.ActionRegister, "", "")
				fmt.Fprintf(cmd.OutOrStdout(), "Registered user %s\n", user.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Optional email address")

	return cmd
}

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate and start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				pw, err := readPassword(cmd, password, "Password: ")
				if err != nil {
					return err
				}
				user, err := mgr.Authenticate(args[0], pw)
				if err != nil {
					return err
				}
				store, err := ctx.sessionStore()
				if err != nil {
					return err
				}
				if err := store.Set(user); err != nil {
					return err
				}
				ctx.recordEvent(user.Username, history.ActionLogin, "", "")
				fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", user.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.sessionStore()
			if err != nil {
				return err
			}
			sess, err := store.Current()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			ctx.recordEvent(sess.Username, history.ActionLogout, "", "")
			fmt.Fprintf(cmd.OutOrStdout(), "Logged out %s\n", sess.Username)
			return nil
		},
	}
}

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d movies, last login %s)\n",
					user.Username, len(user.Movies), user.LastLogin.Format(media.TimeLayout))
				return nil
			})
		},
	}
}
