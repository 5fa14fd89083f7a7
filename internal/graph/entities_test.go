package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMessageType(t *testing.T) {
	t.Parallel()

	require.Equal(t, TypeGeneric, ParseMessageType("Generic"))
	require.Equal(t, TypeShare, ParseMessageType("Share"))
	require.Equal(t, TypeUnknown, ParseMessageType("Bogus"))
	require.Equal(t, TypeUnknown, ParseMessageType(""))
}

func TestMessageTypeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Generic", TypeGeneric.String())
	require.Equal(t, "Share", TypeShare.String())
	require.Equal(t, "Unknown", TypeUnknown.String())
	require.Equal(t, "Unknown", MessageType(42).String())
}

func TestPersonAddChat(t *testing.T) {
	t.Parallel()

	alice := NewPerson("Alice")
	bob := NewPerson("Bob")
	carol := NewPerson("Carol")

	chat := NewChat("Bob", []*Person{alice, bob})

	alice.AddChat(chat, false)
	require.Same(t, chat, alice.Chats["Bob"])
	require.Empty(t, alice.GroupChats)

	// Carol is not a participant, the chat must not be linked.
	carol.AddChat(chat, false)
	require.Empty(t, carol.Chats)

	alice.AddChat(chat, true)
	require.Same(t, chat, alice.GroupChats["Bob"])
}

func TestChatFindParticipant(t *testing.T) {
	t.Parallel()

	alice := NewPerson("Alice")
	bob := NewPerson("Bob")
	chat := NewChat("Bob", []*Person{alice, bob})

	require.Same(t, bob, chat.FindParticipant("Bob"))
	require.Nil(t, chat.FindParticipant("Mallory"))
}

func TestChatAddMessages(t *testing.T) {
	t.Parallel()

	alice := NewPerson("Alice")
	bob := NewPerson("Bob")
	mallory := NewPerson("Mallory")
	chat := NewChat("Bob", []*Person{alice, bob})

	ok := &Message{Sender: alice, Sent: time.UnixMilli(0), Type: TypeGeneric, Reactions: []Reaction{}}
	dropped := &Message{Sender: mallory, Sent: time.UnixMilli(0), Type: TypeGeneric, Reactions: []Reaction{}}

	chat.AddMessages(ok, dropped)

	require.Len(t, chat.Messages, 1)
	require.Same(t, ok, chat.Messages[0])
}
