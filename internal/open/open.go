package open

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkrivanek/msgstats/internal/graph"
)

// Chat opens the chat's source export file in $EDITOR (less when unset).
func Chat(chat *graph.Chat) error {
	path := chat.SourcePath
	if path == "" {
		return fmt.Errorf("chat %q has no source file recorded", chat.Title)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
