package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"comicvault/internal/domain"
	"comicvault/internal/service"
)

var (
	favoriteName       string
	favoriteImageURL   string
	favoriteIssueCount int
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorite characters",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite characters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			favorites, err := a.favorites.GetAllFavorites(ctx)
			if err != nil {
				return err
			}
			return printCharacters(cmd.OutOrStdout(), favorites, a.favorites.IsFavoriteCached)
		})
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add ID",
	Short: "Mark a character as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			input := domain.FavoriteInput{
				ID:         ids[0],
				Name:       favoriteName,
				ImageURL:   favoriteImageURL,
				IssueCount: favoriteIssueCount,
			}
			if err := a.favorites.AddFavorite(ctx, input); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "character %d is a favorite\n", input.ID)
			return nil
		})
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Unmark a favorite character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			if err := a.favorites.RemoveFavorite(ctx, ids[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "character %d is not a favorite\n", ids[0])
			return nil
		})
	},
}

var favoritesRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-fetch every favorite character from the remote catalog once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			stats, err := service.NewFavoritesRefresher(a.favorites, a.detail, a.logger).Refresh(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d of %d favorites (%d errors) in %s\n",
				stats.Refreshed, stats.Favorites, stats.Errors, stats.Duration)
			return nil
		})
	},
}

func init() {
	favoritesAddCmd.Flags().StringVar(&favoriteName, "name", "", "character name, used when the character was never fetched")
	favoritesAddCmd.Flags().StringVar(&favoriteImageURL, "image-url", "", "character image URL")
	favoritesAddCmd.Flags().IntVar(&favoriteIssueCount, "issue-count", 0, "number of issue appearances")
	_ = favoritesAddCmd.MarkFlagRequired("name")

	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesRefreshCmd)
	rootCmd.AddCommand(favoritesCmd)
}
