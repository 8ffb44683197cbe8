package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	issuesBatchSize int
	issuesOffset    int
	issuesLimit     int
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Fetch issues",
}

var issuesGetCmd = &cobra.Command{
	Use:   "get ID...",
	Short: "Fetch issues by id in batches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			issues, err := a.batch.FetchIssuesByIDs(ctx, ids, issuesBatchSize)
			if err != nil {
				return err
			}
			return printIssues(cmd.OutOrStdout(), issues)
		})
	},
}

var issuesCharacterCmd = &cobra.Command{
	Use:   "character ID",
	Short: "List the issues a character appears in, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			issues, err := a.characterIssues.Execute(ctx, ids[0], issuesOffset, issuesLimit)
			if err != nil {
				return err
			}
			return printIssues(cmd.OutOrStdout(), issues)
		})
	},
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	issuesGetCmd.Flags().IntVar(&issuesBatchSize, "batch-size", 0, "issues fetched concurrently per batch (0 uses the configured size)")
	issuesCharacterCmd.Flags().IntVar(&issuesOffset, "offset", 0, "result offset")
	issuesCharacterCmd.Flags().IntVar(&issuesLimit, "limit", 20, "page size")
	issuesCmd.AddCommand(issuesGetCmd, issuesCharacterCmd)
	rootCmd.AddCommand(issuesCmd)
}
