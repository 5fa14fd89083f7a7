package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkrivanek/msgstats/internal/query"
	"github.com/spf13/cobra"
)

func reactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactions [paths...]",
		Short: "Count reactions per person across all exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolveEntries(args)
			if err != nil {
				return err
			}

			docs, err := query.LoadAll(entries)
			if err != nil {
				return err
			}

			counts := query.CountReactions(docs)
			if len(counts) == 0 {
				fmt.Fprintln(os.Stderr, "No reactions found.")
				return nil
			}

			type row struct {
				name  string
				count int
			}
			rows := make([]row, 0, len(counts))
			for name, count := range counts {
				rows = append(rows, row{name, count})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i].count != rows[j].count {
					return rows[i].count > rows[j].count
				}
				return rows[i].name < rows[j].name
			})

			for _, r := range rows {
				fmt.Printf("%6d  %s\n", r.count, r.name)
			}
			return nil
		},
	}
}
