package graph

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/pkrivanek/msgstats/internal/export"
	"go.uber.org/zap"
)

var (
	// ErrUnknownSender means a message's sender_name does not resolve to a
	// registered person. Silently dropping such messages would hide export
	// corruption, so the whole entry load fails instead.
	ErrUnknownSender = errors.New("message sender not registered")

	// ErrUnknownActor is the same fault for a reaction's actor.
	ErrUnknownActor = errors.New("reaction actor not registered")
)

// Registry owns every Person and Chat loaded during one analysis session.
// Direct chats and group chats live in disjoint lists. Entities are only ever
// added; the whole registry is discarded at the end of the session.
type Registry struct {
	logger *zap.SugaredLogger

	People     []*Person
	Chats      []*Chat
	GroupChats []*Chat
}

func NewRegistry(logger *zap.SugaredLogger) *Registry {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Registry{logger: logger}
}

// Load builds a registry from the given entry paths. On error the returned
// registry holds everything loaded before the failing entry.
func Load(logger *zap.SugaredLogger, entries []string) (*Registry, error) {
	reg := NewRegistry(logger)
	for _, entry := range entries {
		if err := reg.LoadEntry(entry); err != nil {
			return reg, err
		}
	}
	return reg, nil
}

// FindPerson returns the registered person with the given name, or nil.
func (r *Registry) FindPerson(name string) *Person {
	for _, p := range r.People {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindChat returns the first chat in load order matching the title. When
// participants is non-nil the candidate's sorted participant-name set must
// equal the sorted input as well; a nil participants list disables that check
// and can return the wrong chat when two distinct chats share a title.
func (r *Registry) FindChat(title string, participants []string, searchGroups bool) *Chat {
	chats := r.Chats
	if searchGroups {
		chats = r.GroupChats
	}

	var want []string
	if participants != nil {
		want = append([]string(nil), participants...)
		sort.Strings(want)
	}

	for _, chat := range chats {
		if chat.Title != title {
			continue
		}
		if want == nil || namesEqual(sortedParticipantNames(chat), want) {
			return chat
		}
	}
	return nil
}

// LoadEntry parses one conversation export file and merges it into the
// registry: new participants are registered first (re-adding by name is a
// no-op), then the chat and its messages. A failure mid-entry leaves the
// people registered so far in place.
func (r *Registry) LoadEntry(path string) error {
	doc, err := export.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read entry: %w", err)
	}

	r.loadPeople(doc.Participants)

	if err := r.loadChat(doc, path); err != nil {
		return fmt.Errorf("load chat %q from %s: %w", doc.Title, path, err)
	}
	return nil
}

func (r *Registry) loadPeople(participants []export.Participant) {
	for _, p := range participants {
		if r.FindPerson(p.Name) == nil {
			r.People = append(r.People, NewPerson(p.Name))
		}
	}
}

func (r *Registry) loadChat(doc *export.Document, path string) error {
	names := doc.ParticipantNames()
	isGroup := doc.IsGroup()

	chat := r.FindChat(doc.Title, names, isGroup)
	if chat == nil {
		participants := make([]*Person, 0, len(names))
		for _, name := range names {
			participants = append(participants, r.FindPerson(name))
		}
		chat = NewChat(doc.Title, participants)
		chat.SourcePath = path
		if isGroup {
			r.GroupChats = append(r.GroupChats, chat)
		} else {
			r.Chats = append(r.Chats, chat)
		}
	}

	for _, raw := range doc.Messages {
		msg, err := r.convertMessage(raw)
		if err != nil {
			return err
		}
		chat.AddMessages(msg)
	}

	for _, name := range names {
		r.FindPerson(name).AddChat(chat, isGroup)
	}

	r.logger.Debugf("Loaded chat (%s) with %d participants and %d messages (group: %t)",
		chat.Title, len(chat.Participants), len(doc.Messages), isGroup)

	return nil
}

// convertMessage turns one raw export record into a typed message. Absent
// optional fields stay absent; a present-but-empty photos or videos array
// becomes an empty non-nil slice.
func (r *Registry) convertMessage(raw export.RawMessage) (*Message, error) {
	sender := r.FindPerson(raw.SenderName)
	if sender == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSender, raw.SenderName)
	}

	typ := TypeUnknown
	if raw.Type != nil {
		typ = ParseMessageType(*raw.Type)
	}

	msg := &Message{
		Sender:    sender,
		Sent:      time.UnixMilli(raw.TimestampMS),
		Type:      typ,
		Content:   raw.Content,
		Reactions: []Reaction{},
	}

	if raw.Photos != nil {
		msg.Photos = make([]Photo, 0, len(raw.Photos))
		for _, p := range raw.Photos {
			msg.Photos = append(msg.Photos, Photo{
				URI:     p.URI,
				Created: time.UnixMilli(p.CreationTimestamp),
			})
		}
	}

	if raw.Videos != nil {
		msg.Videos = make([]Video, 0, len(raw.Videos))
		for _, v := range raw.Videos {
			msg.Videos = append(msg.Videos, Video{
				URI:          v.URI,
				Created:      time.UnixMilli(v.CreationTimestamp),
				ThumbnailURI: v.Thumbnail.URI,
			})
		}
	}

	if raw.Share != nil {
		msg.Share = &Share{
			Link: raw.Share.Link,
			Text: raw.Share.ShareText,
		}
	}

	for _, react := range raw.Reactions {
		actor := r.FindPerson(react.Actor)
		if actor == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActor, react.Actor)
		}
		msg.Reactions = append(msg.Reactions, Reaction{Actor: actor, Kind: react.Reaction})
	}

	return msg, nil
}

func sortedParticipantNames(c *Chat) []string {
	names := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

func namesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
