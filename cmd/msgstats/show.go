package main

import (
	"fmt"

	"github.com/pkrivanek/msgstats/internal/graph"
	"github.com/pkrivanek/msgstats/internal/render"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var group bool
	var keyword string
	var width, limit int

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Render a chat transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolveEntries(nil)
			if err != nil {
				return err
			}

			reg, err := graph.Load(newLogger(), entries)
			if err != nil {
				return err
			}

			chat := reg.FindChat(args[0], nil, group)
			if chat == nil {
				return fmt.Errorf("chat not found: %s", args[0])
			}

			fmt.Print(render.Chat(chat, render.Options{
				Keyword: keyword,
				Width:   width,
				Limit:   limit,
				Group:   group,
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "Look the title up among group chats")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Highlight this keyword in message content")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (0 = no wrap)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Only render the last N messages (0 = all)")

	return cmd
}
