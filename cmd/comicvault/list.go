package main

import (
	"context"

	"github.com/spf13/cobra"
)

var (
	listOffset int
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the catalog, most recently updated first",
}

var listCharactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if err := a.favorites.Load(ctx); err != nil {
				return err
			}
			characters, err := a.listCharacters.Execute(ctx, listOffset, listLimit)
			if err != nil {
				return err
			}
			return printCharacters(cmd.OutOrStdout(), characters, a.favorites.IsFavoriteCached)
		})
	},
}

var listIssuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List issues",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			issues, err := a.listIssues.Execute(ctx, listOffset, listLimit)
			if err != nil {
				return err
			}
			return printIssues(cmd.OutOrStdout(), issues)
		})
	},
}

func init() {
	listCmd.PersistentFlags().IntVar(&listOffset, "offset", 0, "result offset")
	listCmd.PersistentFlags().IntVar(&listLimit, "limit", 20, "page size")
	listCmd.AddCommand(listCharactersCmd, listIssuesCmd)
	rootCmd.AddCommand(listCmd)
}
