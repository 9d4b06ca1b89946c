package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/history"
	"kinolog/internal/library"
	"kinolog/internal/media"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var rating float64

	cmd := &cobra.Command{
		Use:   "watch <id>",
		Short: "Mark a movie as watched with a rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				id, err := resolveMovieID(lib.List(), args[0])
				if err != nil {
					return err
				}
				if err := lib.SetStatus(id, media.StatusWatched, &rating); err != nil {
					return err
				}
				movie, err := lib.Get(id)
				if err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionMovieWatched, movie.Title, formatRating(movie.Rating))
				fmt.Fprintf(cmd.OutOrStdout(), "Watched %s, rated %s\n", movie.Title, formatRating(movie.Rating))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&rating, "rating", 0, "Rating 0-10 (required)")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newUnwatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unwatch <id>",
		Short: "Mark a movie as not watched, clearing rating and watch date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				id, err := resolveMovieID(lib.List(), args[0])
				if err != nil {
					return err
				}
				if err := lib.SetStatus(id, media.StatusUnwatched, nil); err != nil {
					return err
				}
				movie, err := lib.Get(id)
				if err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionMovieUnwatched, movie.Title, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as not watched\n", movie.Title)
				return nil
			})
		},
	}
}
