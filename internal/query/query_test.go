package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func loadFixtures(t *testing.T) []Document {
	t.Helper()
	dir := t.TempDir()
	paths := []string{
		writeDoc(t, dir, "a.json", `{
			"participants": [{"name": "Ann"}, {"name": "Bo"}],
			"title": "Bo",
			"thread_type": "Regular",
			"messages": [
				{"sender_name": "Ann", "timestamp_ms": 1, "type": "Generic", "content": "Hello World",
					"reactions": [{"actor": "Ann", "reaction": "❤"}]},
				{"sender_name": "Bo", "timestamp_ms": 2, "type": "Generic"}
			]
		}`),
		writeDoc(t, dir, "b.json", `{
			"participants": [{"name": "Ann"}, {"name": "Bo"}, {"name": "Cy"}],
			"title": "Crew",
			"thread_type": "RegularGroup",
			"messages": [
				{"sender_name": "Cy", "timestamp_ms": 3, "type": "Generic", "content": "hello there",
					"reactions": [{"actor": "Ann", "reaction": "👍"}, {"actor": "Bo", "reaction": "👍"}]}
			]
		}`),
	}

	docs, err := LoadAll(paths)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	return docs
}

func TestLoadAllMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadAll([]string{filepath.Join(t.TempDir(), "nope.json")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAllMalformed(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, t.TempDir(), "broken.json", `{"messages": [}`)
	_, err := LoadAll([]string{path})
	require.Error(t, err)
}

func TestCountReactions(t *testing.T) {
	t.Parallel()

	docs := loadFixtures(t)

	counts := CountReactions(docs)
	require.Equal(t, map[string]int{"Ann": 2, "Bo": 1}, counts)
}

func TestCountReactionsEmpty(t *testing.T) {
	t.Parallel()

	path := writeDoc(t, t.TempDir(), "quiet.json", `{
		"participants": [{"name": "Ann"}],
		"title": "Ann",
		"messages": [{"sender_name": "Ann", "timestamp_ms": 1, "type": "Generic", "content": "hi"}]
	}`)
	docs, err := LoadAll([]string{path})
	require.NoError(t, err)

	require.Empty(t, CountReactions(docs))
}

func TestCountOccurrence(t *testing.T) {
	t.Parallel()

	docs := loadFixtures(t)

	// case-insensitive by default: "Hello World" and "hello there"
	require.Equal(t, 2, CountOccurrence(docs, "hello", "", true))

	// case-sensitive only matches the capitalized one
	require.Equal(t, 1, CountOccurrence(docs, "Hello", "", false))

	// messages without content never match, even with an empty keyword
	require.Equal(t, 0, CountOccurrence(docs, "", "Bo", true))
}

func TestCountOccurrenceSenderFilter(t *testing.T) {
	t.Parallel()

	docs := loadFixtures(t)

	// substring match against sender_name, not exact equality
	require.Equal(t, 1, CountOccurrence(docs, "hello", "Cy", true))
	require.Equal(t, 1, CountOccurrence(docs, "hello", "C", true))
	require.Equal(t, 0, CountOccurrence(docs, "hello", "Bo", true))
}
