package main

import (
	"fmt"
	"os"

	"github.com/pkrivanek/msgstats/internal/config"
	"github.com/pkrivanek/msgstats/internal/graph"
	"github.com/pkrivanek/msgstats/internal/scan"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify archive root, scan exports, show load stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := flagRoot
			if root == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("config: %w", err)
				}
				root = cfg.ArchiveRoot
			}

			fmt.Println("=== Archive Root ===")
			checkDir(root)

			fmt.Println("\n=== File Scan ===")
			entries, err := scan.Root(root)
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
				return nil
			}
			fmt.Printf("  JSON export files: %d\n", len(entries))
			if len(entries) == 0 {
				return nil
			}

			fmt.Println("\n=== Load ===")
			reg := graph.NewRegistry(newLogger())
			loaded, failed := 0, 0
			for _, entry := range entries {
				if err := reg.LoadEntry(entry); err != nil {
					failed++
					fmt.Printf("  WARN: %s: %v\n", entry, err)
					continue
				}
				loaded++
			}
			fmt.Printf("  Loaded: %d, failed: %d\n", loaded, failed)
			fmt.Printf("  %s\n", reg.Stats())

			return nil
		},
	}
}

func checkDir(path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", path)
	} else if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", path)
	} else {
		fmt.Printf("  %s (OK)\n", path)
	}
}
