package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchOffset int
	searchLimit  int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog through the cache",
}

var searchCharactersCmd = &cobra.Command{
	Use:   "characters QUERY",
	Short: "Search characters by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if err := a.favorites.Load(ctx); err != nil {
				return err
			}
			characters, err := a.searchCharacters.Execute(ctx, strings.Join(args, " "), searchOffset, searchLimit)
			if err != nil {
				return err
			}
			return printCharacters(cmd.OutOrStdout(), characters, a.favorites.IsFavoriteCached)
		})
	},
}

var searchComicsCmd = &cobra.Command{
	Use:   "comics QUERY",
	Short: "Search issues by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			issues, err := a.searchComics.Execute(ctx, strings.Join(args, " "), searchOffset, searchLimit)
			if err != nil {
				return err
			}
			return printIssues(cmd.OutOrStdout(), issues)
		})
	},
}

func init() {
	searchCmd.PersistentFlags().IntVar(&searchOffset, "offset", 0, "result offset")
	searchCmd.PersistentFlags().IntVar(&searchLimit, "limit", 20, "page size")
	searchCmd.AddCommand(searchCharactersCmd, searchComicsCmd)
	rootCmd.AddCommand(searchCmd)
}
