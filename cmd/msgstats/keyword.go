package main

import (
	"fmt"

	"github.com/pkrivanek/msgstats/internal/query"
	"github.com/spf13/cobra"
)

func keywordCmd() *cobra.Command {
	var sender string
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "keyword <word> [paths...]",
		Short: "Count messages containing a keyword",
		Long: `Counts messages whose content contains the keyword as a substring.
A message counts once no matter how many times the keyword appears in it.
Matching is case-insensitive unless --case-sensitive is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolveEntries(args[1:])
			if err != nil {
				return err
			}

			docs, err := query.LoadAll(entries)
			if err != nil {
				return err
			}

			count := query.CountOccurrence(docs, args[0], sender, !caseSensitive)
			fmt.Println(count)
			return nil
		},
	}

	cmd.Flags().StringVar(&sender, "sender", "", "Only count messages whose sender name contains this substring")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match keyword case-sensitively")

	return cmd
}
