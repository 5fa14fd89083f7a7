package main

import (
	"fmt"

	"github.com/pkrivanek/msgstats/internal/graph"
	"github.com/pkrivanek/msgstats/internal/open"
	"github.com/spf13/cobra"
)

func openCmd() *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "open <title>",
		Short: "Open a chat's source export file in $EDITOR",
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

			return open.Chat(chat)
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "Look the title up among group chats")

	return cmd
}
