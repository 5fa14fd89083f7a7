package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "inbox", "bob_abc123"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "archived"), 0o755))

	want := []string{
		filepath.Join(dir, "inbox", "bob_abc123", "message_1.json"),
		filepath.Join(dir, "archived", "old.json"),
	}
	for _, path := range want {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}
	// non-JSON files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inbox", "bob_abc123", "photo.jpg"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))

	got, err := Root(dir)
	require.NoError(t, err)
	require.ElementsMatch(t, want, got)
}

func TestRootEmpty(t *testing.T) {
	t.Parallel()

	got, err := Root(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, got)
}
