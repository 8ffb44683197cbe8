package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"comicvault/internal/domain"
)

var jsonOutput bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCharacters(w io.Writer, characters []domain.Character, isFavorite func(int64) bool) error {
	if jsonOutput {
		return printJSON(w, characters)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tISSUES\tFAVORITE")
	for _, c := range characters {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%t\n", c.ID, c.Name, c.IssueCount, isFavorite(c.ID))
	}
	return tw.Flush()
}

func printIssues(w io.Writer, issues []domain.Issue) error {
	if jsonOutput {
		return printJSON(w, issues)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCOVER DATE")
	for _, i := range issues {
		cover := "-"
		if i.CoverDate != nil {
			cover = *i.CoverDate
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i.ID, i.Title(), cover)
	}
	return tw.Flush()
}
