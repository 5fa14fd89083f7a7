package render

import (
	"strings"
	"testing"
	"time"

	"github.com/pkrivanek/msgstats/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestHighlightKeyword(t *testing.T) {
	t.Parallel()

	out := highlightKeyword("Hello hello", "hello")
	require.Equal(t, 2, strings.Count(out, colorBoldRed))
	// the original casing is preserved inside the highlight
	require.Contains(t, out, colorBoldRed+"Hello"+colorReset)

	require.Equal(t, "plain", highlightKeyword("plain", ""))
	require.Equal(t, "plain", highlightKeyword("plain", "zzz"))
}

func TestWrapLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"abcdef"}, wrapLine("abcdef", 0))
	require.Equal(t, []string{"abc", "def"}, wrapLine("abcdef", 3))
	require.Equal(t, []string{""}, wrapLine("", 3))

	// ANSI escapes take no visible width
	wrapped := wrapLine(colorDim+"abcdef"+colorReset, 6)
	require.Len(t, wrapped, 1)
}

func TestChatTranscript(t *testing.T) {
	t.Parallel()

	alice := graph.NewPerson("Alice")
	bob := graph.NewPerson("Bob")
	chat := graph.NewChat("Bob", []*graph.Person{alice, bob})

	content := "Hello World"
	link := "https://example.com"
	chat.AddMessages(
		&graph.Message{
			Sender:    alice,
			Sent:      time.UnixMilli(1577880000000),
			Type:      graph.TypeGeneric,
			Content:   &content,
			Reactions: []graph.Reaction{{Actor: bob, Kind: "👍"}},
		},
		&graph.Message{
			Sender:    bob,
			Sent:      time.UnixMilli(1577880060000),
			Type:      graph.TypeShare,
			Share:     &graph.Share{Link: &link},
			Reactions: []graph.Reaction{},
		},
	)

	out := Chat(chat, Options{Keyword: "world"})

	require.Contains(t, out, "Bob [direct] Alice, Bob")
	require.Contains(t, out, "Hello ")
	require.Contains(t, out, colorBoldRed+"World"+colorReset)
	require.Contains(t, out, "[share] https://example.com")
	require.Contains(t, out, "👍 Bob")
}

func TestChatTranscriptLimit(t *testing.T) {
	t.Parallel()

	alice := graph.NewPerson("Alice")
	chat := graph.NewChat("Alice", []*graph.Person{alice})
	for i := 0; i < 5; i++ {
		text := "msg"
		chat.AddMessages(&graph.Message{
			Sender:    alice,
			Sent:      time.UnixMilli(int64(i)),
			Type:      graph.TypeGeneric,
			Content:   &text,
			Reactions: []graph.Reaction{},
		})
	}

	out := Chat(chat, Options{Limit: 2})
	require.Contains(t, out, "(3 messages omitted)")
	require.Equal(t, 2, strings.Count(out, "  msg"))
}
