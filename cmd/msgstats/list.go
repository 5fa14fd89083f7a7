package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkrivanek/msgstats/internal/graph"
	"github.com/pkrivanek/msgstats/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "Browse all loaded chats",
		Long: `Loads every export into the registry and opens an interactive browser
when stdout is a terminal. Output is TSV for pipes:
  kind, title, participants, message count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolveEntries(args)
			if err != nil {
				return err
			}

			reg, err := graph.Load(newLogger(), entries)
			if err != nil {
				return err
			}

			items := make([]tui.Entry, 0, len(reg.Chats)+len(reg.GroupChats))
			for _, chat := range reg.Chats {
				items = append(items, tui.Entry{Chat: chat})
			}
			for _, chat := range reg.GroupChats {
				items = append(items, tui.Entry{Chat: chat, Group: true})
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(items)
			}

			for _, item := range items {
				kind := "direct"
				if item.Group {
					kind = "group"
				}
				names := make([]string, 0, len(item.Chat.Participants))
				for _, p := range item.Chat.Participants {
					names = append(names, p.Name)
				}
				fmt.Printf("%s\t%s\t%s\t%d\n",
					kind,
					strings.ReplaceAll(item.Chat.Title, "\t", " "),
					strings.Join(names, ","),
					len(item.Chat.Messages),
				)
			}
			return nil
		},
	}
}
