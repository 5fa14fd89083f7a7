package main

import (
	"fmt"
	"os"

	"github.com/pkrivanek/msgstats/internal/config"
	"github.com/pkrivanek/msgstats/internal/scan"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	flagRoot    string
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "msgstats",
		Short:   "Analyze Facebook Messenger export archives",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "Archive root to scan (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(reactionsCmd())
	rootCmd.AddCommand(keywordCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.SugaredLogger {
	if !flagVerbose {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// resolveEntries returns explicit paths when given, otherwise scans the
// archive root (--root or config) for export files.
func resolveEntries(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	root := flagRoot
	if root == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		root = cfg.ArchiveRoot
	}

	entries, err := scan.Root(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no .json exports found under %s", root)
	}
	return entries, nil
}
