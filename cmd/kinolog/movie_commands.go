package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kinolog/internal/accounts"
	"kinolog/internal/history"
	"kinolog/internal/library"
	"kinolog/internal/media"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var director, year, genre, description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a movie to your collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				movie, err := media.NewMovie(args[0], director, year, genre, description)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				if err := lib.Add(movie); err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionMovieAdded, movie.Title, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", movie.Title, shortID(movie.ID))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&director, "director", "", "Movie director (required)")
	cmd.Flags().StringVar(&year, "year", "", "Release year")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	_ = cmd.MarkFlagRequired("director")

	return cmd
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var genre string
	var sortBy string
	var watchedOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your movie collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())

				if watchedOnly {
					entries := lib.WatchedHistory()
					if len(entries) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "No watched movies yet")
						return nil
					}
					rows := make([][]string, 0, len(entries))
					for _, entry := range entries {
						rows = append(rows, []string{entry.Title, entry.WatchDate})
					}
					fmt.Fprintln(cmd.OutOrStdout(), renderTable(
						[]string{"Title", "Watched"},
						rows,
						[]columnAlignment{alignLeft, alignLeft},
					))
					return nil
				}

				var movies []*media.Movie
				switch strings.ToLower(sortBy) {
				case "":
					movies = lib.List()
				case "rating":
					movies = lib.SortedByRating()
				case "title":
					movies = lib.SortedByTitle()
				default:
					return fmt.Errorf("unknown sort %q (allowed: rating, title)", sortBy)
				}
				if genre != "" {
					filtered := lib.FilterByGenre(genre)
					movies = intersect(movies, filtered)
				}

				if len(movies) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No movies in your collection")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(movieHeaders, movieRows(movies), movieAligns))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Only movies whose genre contains this text")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: rating (descending) or title")
	cmd.Flags().BoolVar(&watchedOnly, "watched", false, "Show only watched movies with their watch dates")

	return cmd
}

// intersect keeps ordered's elements that are also in allowed.
func intersect(ordered, allowed []*media.Movie) []*media.Movie {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, movie := range allowed {
		allowedSet[movie.ID] = struct{}{}
	}
	var out []*media.Movie
	for _, movie := range ordered {
		if _, ok := allowedSet[movie.ID]; ok {
			out = append(out, movie)
		}
	}
	return out
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one movie with its comments",
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
				movie, err := lib.Get(id)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", movie.Title, movie.Year)
				fmt.Fprintf(out, "  Director: %s\n", movie.Director)
				fmt.Fprintf(out, "  Genre:    %s\n", movie.Genre)
				fmt.Fprintf(out, "  Status:   %s\n", displayStatus(movie.Status))
				fmt.Fprintf(out, "  Rating:   %s\n", formatRating(movie.Rating))
				if movie.WatchDate != "" {
					fmt.Fprintf(out, "  Watched:  %s\n", movie.WatchDate)
				}
				if movie.Description != "" {
					fmt.Fprintf(out, "  %s\n", movie.Description)
				}
				if len(movie.Comments) == 0 {
					fmt.Fprintln(out, "  No comments")
					return nil
				}
				fmt.Fprintln(out, "  Comments:")
				for _, comment := range movie.Comments {
					fmt.Fprintf(out, "    %s: %s\n", comment.User, comment.Comment)
				}
				return nil
			})
		},
	}
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var title, director, year, genre, description string
	var rating float64

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields of a movie",
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

				changed := false
				if cmd.Flags().Changed("title") {
					if err := lib.UpdateTitle(id, title); err != nil {
						return err
					}
					changed = true
				}
				if cmd.Flags().Changed("director") {
					if err := lib.UpdateDirector(id, director); err != nil {
						return err
					}
					changed = true
				}
				if cmd.Flags().Changed("year") {
					if err := lib.UpdateYear(id, year); err != nil {
						return err
					}
					changed = true
				}
				if cmd.Flags().Changed("genre") {
					if err := lib.UpdateGenre(id, genre); err != nil {
						return err
					}
					changed = true
				}
				if cmd.Flags().Changed("description") {
					if err := lib.UpdateDescription(id, description); err != nil {
						return err
					}
					changed = true
				}
				if cmd.Flags().Changed("rating") {
					if err := lib.UpdateRating(id, rating); err != nil {
						return err
					}
					changed = true
				}
				if !changed {
					return fmt.Errorf("nothing to update; pass at least one field flag")
				}

				movie, err := lib.Get(id)
				if err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionMovieEdited, movie.Title, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", movie.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&director, "director", "", "New director")
	cmd.Flags().StringVar(&year, "year", "", "New release year")
	cmd.Flags().StringVar(&genre, "genre", "", "New genre")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().Float64Var(&rating, "rating", 0, "New rating (0-10)")

	return cmd
}

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a movie from your collection",
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
				movie, err := lib.Get(id)
				if err != nil {
					return err
				}
				if err := lib.Delete(id); err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionMovieDeleted, movie.Title, "")
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", movie.Title)
				return nil
			})
		},
	}
}

func newCommentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <title> <text>",
		Short: "Comment on a movie in your collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())
				if err := lib.AddComment(args[0], user.Username, args[1]); err != nil {
					return err
				}
				persistCollection(cmd, mgr)
				ctx.recordEvent(user.Username, history.ActionCommentAdded, args[0], "")
				fmt.Fprintf(cmd.OutOrStdout(), "Comment added to %s\n", args[0])
				return nil
			})
		},
	}
}

func newFindCommand(ctx *commandContext) *cobra.Command {
	var title string
	var director string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find movies by exact title or director",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (title == "") == (director == "") {
				return fmt.Errorf("pass exactly one of --title or --director")
			}
			return ctx.withAccounts(func(mgr *accounts.Manager) error {
				user, err := ctx.requireUser(mgr)
				if err != nil {
					return err
				}
				lib := library.NewManager(user, ctx.ensureLogger())

				var movies []*media.Movie
				if title != "" {
					movies = lib.FindByTitle(title)
				} else {
					movies = lib.FindByDirector(director)
				}

				if len(movies) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No matches")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(movieHeaders, movieRows(movies), movieAligns))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Exact title (case-insensitive)")
	cmd.Flags().StringVar(&director, "director", "", "Exact director name (case-insensitive)")

	return cmd
}
