package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/library"
	"kinolog/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for your collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				movies := lib.List()
				out := cmd.OutOrStdout()

				if len(movies) == 0 {
					fmt.Fprintln(out, "No movies in your collection")
					return nil
				}

				points := stats.WatchedRatings(movies)
				if len(points) == 0 {
					fmt.Fprintln(out, "No watched movies with ratings yet")
				} else {
					rows := make([][]string, 0, len(points))
					for _, point := range points {
						rows = append(rows, []string{
							point.Title,
							strconv.FormatFloat(point.Rating, 'f', -1, 64),
						})
					}
					fmt.Fprintln(out, "Watched movies:")
					fmt.Fprintln(out, renderTable(
						[]string{"Title", "Rating"},
						rows,
						[]columnAlignment{alignLeft, alignRight},
					))
				}

				breakdown := stats.GenreBreakdown(movies)
				if len(breakdown) > 0 {
					rows := make([][]string, 0, len(breakdown))
					for _, genre := range breakdown {
						rows = append(rows, []string{
							displayCaser.String(genre.Genre),
							strconv.Itoa(genre.Count),
						})
					}
					fmt.Fprintln(out, "Genres:")
					fmt.Fprintln(out, renderTable(
						[]string{"Genre", "Movies"},
						rows,
						[]columnAlignment{alignLeft, alignRight},
					))
				}

				if avg, ok := stats.AverageRating(movies); ok {
					fmt.Fprintf(out, "Average rating: %.2f\n", avg)
				}

				if top > 0 {
					rated := stats.Top(movies, top)
					if len(rated) > 0 {
						fmt.Fprintf(out, "Top %d:\n", len(rated))
						fmt.Fprintln(out, renderTable(movieHeaders, movieRows(rated), movieAligns))
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Also show the N highest rated movies")

	return cmd
}
