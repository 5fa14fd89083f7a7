package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// Root recursively collects every file under root whose name ends in ".json",
// in directory-traversal order. Unreadable subtrees are skipped.
func Root(root string) ([]string, error) {
	var entries []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable dirs
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".json") {
			return nil
		}
		entries = append(entries, path)
		return nil
	})
	return entries, err
}
