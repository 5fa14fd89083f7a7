package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "message_1.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `{
		"participants": [{"name": "Alice"}, {"name": "Bob"}],
		"title": "Bob",
		"thread_type": "Regular",
		"messages": [
			{"sender_name": "Alice", "timestamp_ms": 1577880000000, "type": "Generic", "content": "hi"},
			{"sender_name": "Bob", "timestamp_ms": 1577880060000}
		]
	}`)

	doc, err := ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, "Bob", doc.Title)
	require.Equal(t, []string{"Alice", "Bob"}, doc.ParticipantNames())
	require.NotNil(t, doc.ThreadType)
	require.Equal(t, ThreadTypeRegular, *doc.ThreadType)
	require.Len(t, doc.Messages, 2)

	// optionals decode to nil when the field is absent
	second := doc.Messages[1]
	require.Nil(t, second.Type)
	require.Nil(t, second.Content)
	require.Nil(t, second.Photos)
	require.Nil(t, second.Videos)
	require.Nil(t, second.Share)
	require.Nil(t, second.Reactions)
}

func TestReadFilePresentButEmpty(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `{
		"participants": [{"name": "Alice"}],
		"title": "Alice",
		"messages": [
			{"sender_name": "Alice", "timestamp_ms": 1, "photos": [], "share": {}}
		]
	}`)

	doc, err := ReadFile(path)
	require.NoError(t, err)

	msg := doc.Messages[0]
	require.NotNil(t, msg.Photos)
	require.Empty(t, msg.Photos)
	require.NotNil(t, msg.Share)
	require.Nil(t, msg.Share.Link)
	require.Nil(t, msg.Share.ShareText)
}

func TestIsGroup(t *testing.T) {
	t.Parallel()

	regular := "Regular"
	group := "RegularGroup"

	cases := []struct {
		name string
		doc  Document
		want bool
	}{
		{"regular thread type", Document{ThreadType: &regular}, false},
		{"other thread type", Document{ThreadType: &group}, true},
		{"absent thread type, two participants", Document{
			Participants: []Participant{{Name: "A"}, {Name: "B"}},
		}, false},
		{"absent thread type, three participants", Document{
			Participants: []Participant{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.doc.IsGroup())
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, `{"participants": [}`)
	_, err = ReadFile(path)
	require.Error(t, err)
}
