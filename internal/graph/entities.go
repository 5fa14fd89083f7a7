package graph

import "time"

// MessageType is the kind of a Messenger message.
type MessageType int

const (
	TypeUnknown MessageType = iota
	TypeGeneric
	TypeShare
)

func (t MessageType) String() string {
	switch t {
	case TypeGeneric:
		return "Generic"
	case TypeShare:
		return "Share"
	default:
		return "Unknown"
	}
}

// ParseMessageType maps the raw type string to a MessageType. The mapping is
// total: anything outside the known set becomes TypeUnknown.
func ParseMessageType(s string) MessageType {
	switch s {
	case "Generic":
		return TypeGeneric
	case "Share":
		return TypeShare
	default:
		return TypeUnknown
	}
}

// Person is a single Messenger user, unique by name. The registry owns every
// Person; chats and messages only hold references. Chats and GroupChats map
// chat title to the chats the person takes part in.
type Person struct {
	Name       string
	Chats      map[string]*Chat
	GroupChats map[string]*Chat
}

func NewPerson(name string) *Person {
	return &Person{
		Name:       name,
		Chats:      make(map[string]*Chat),
		GroupChats: make(map[string]*Chat),
	}
}

// AddChat records the chat under the person's direct or group map. The chat is
// only added when the person actually appears in its participant list.
func (p *Person) AddChat(chat *Chat, group bool) {
	if chat.FindParticipant(p.Name) == nil {
		return
	}
	if group {
		p.GroupChats[chat.Title] = chat
	} else {
		p.Chats[chat.Title] = chat
	}
}

// Chat is one conversation. Titles are not globally unique; two chats are told
// apart by their participant sets. Messages keep load order, which is not
// necessarily chronological.
type Chat struct {
	Title        string
	Participants []*Person
	Messages     []*Message

	// SourcePath is the export file this chat was first loaded from.
	SourcePath string
}

func NewChat(title string, participants []*Person) *Chat {
	return &Chat{
		Title:        title,
		Participants: participants,
	}
}

// FindParticipant returns the participant with the given name, or nil.
func (c *Chat) FindParticipant(name string) *Person {
	for _, p := range c.Participants {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AddMessages appends messages whose sender is a listed participant of the
// chat. Messages from non-participants are dropped.
func (c *Chat) AddMessages(msgs ...*Message) {
	for _, m := range msgs {
		if c.FindParticipant(m.Sender.Name) != nil {
			c.Messages = append(c.Messages, m)
		}
	}
}

// Message is a single sent message. Content, Photos, Videos and Share are nil
// when the export record lacked the field; Reactions is always non-nil.
type Message struct {
	Sender    *Person
	Sent      time.Time
	Type      MessageType
	Content   *string
	Photos    []Photo
	Videos    []Video
	Share     *Share
	Reactions []Reaction
}

type Photo struct {
	URI     string
	Created time.Time
}

type Video struct {
	URI          string
	Created      time.Time
	ThumbnailURI string
}

// Share carries an optional link and optional display text; either may be
// absent in the export.
type Share struct {
	Link *string
	Text *string
}

type Reaction struct {
	Actor *Person
	Kind  string
}
