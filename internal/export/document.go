package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// ThreadTypeRegular marks a plain 1:1 conversation in Messenger exports.
const ThreadTypeRegular = "Regular"

// Document mirrors one conversation export file (Facebook "Download Your
// Information" Messenger JSON). Optional fields decode to nil pointers or nil
// slices, so "field absent" stays distinguishable from "present but empty".
type Document struct {
	Participants []Participant `json:"participants"`
	Title        string        `json:"title"`
	ThreadType   *string       `json:"thread_type"`
	Messages     []RawMessage  `json:"messages"`
}

type Participant struct {
	Name string `json:"name"`
}

type RawMessage struct {
	SenderName  string        `json:"sender_name"`
	TimestampMS int64         `json:"timestamp_ms"`
	Type        *string       `json:"type"`
	Content     *string       `json:"content"`
	Photos      []RawPhoto    `json:"photos"`
	Videos      []RawVideo    `json:"videos"`
	Share       *RawShare     `json:"share"`
	Reactions   []RawReaction `json:"reactions"`
}

type RawPhoto struct {
	URI               string `json:"uri"`
	CreationTimestamp int64  `json:"creation_timestamp"`
}

type RawVideo struct {
	URI               string       `json:"uri"`
	CreationTimestamp int64        `json:"creation_timestamp"`
	Thumbnail         RawThumbnail `json:"thumbnail"`
}

type RawThumbnail struct {
	URI string `json:"uri"`
}

type RawShare struct {
	Link      *string `json:"link"`
	ShareText *string `json:"share_text"`
}

type RawReaction struct {
	Actor    string `json:"actor"`
	Reaction string `json:"reaction"`
}

// ReadFile reads and decodes a single conversation export file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &doc, nil
}

// ParticipantNames returns participant names in document order.
func (d *Document) ParticipantNames() []string {
	names := make([]string, 0, len(d.Participants))
	for _, p := range d.Participants {
		names = append(names, p.Name)
	}
	return names
}

// IsGroup classifies the conversation. The thread_type field is authoritative;
// the participant-count heuristic applies only when the export lacks it.
func (d *Document) IsGroup() bool {
	if d.ThreadType != nil {
		return *d.ThreadType != ThreadTypeRegular
	}
	return len(d.Participants) > 2
}
