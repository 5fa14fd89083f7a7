package query

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fastjson"
)

// Document is one conversation export kept in raw parsed form. The aggregate
// queries scan raw documents directly rather than the loaded graph, so they
// still work on exports the loader would reject as inconsistent.
type Document struct {
	Path string
	root *fastjson.Value
}

// LoadAll reads and parses every export file. Each file is fully buffered,
// read, and closed before the next one is touched.
func LoadAll(paths []string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		root, err := fastjson.ParseBytes(body)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		docs = append(docs, Document{Path: path, root: root})
	}
	return docs, nil
}

// CountReactions maps each reactor name to the total number of reactions they
// made across every message of every document. Names are compared exactly,
// case included.
func CountReactions(docs []Document) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, msg := range doc.root.GetArray("messages") {
			if !msg.Exists("reactions") {
				continue
			}
			for _, react := range msg.GetArray("reactions") {
				actor := react.GetStringBytes("actor")
				if actor == nil {
					continue
				}
				counts[string(actor)]++
			}
		}
	}
	return counts
}

// CountOccurrence counts messages whose content contains keyword as a
// substring. A message with three occurrences still counts once. A non-empty
// sender narrows the scan to messages whose sender_name contains it as a
// substring. With caseInsensitive both keyword and content are lowercased
// before matching.
func CountOccurrence(docs []Document, keyword, sender string, caseInsensitive bool) int {
	if caseInsensitive {
		keyword = strings.ToLower(keyword)
	}

	count := 0
	for _, doc := range docs {
		for _, msg := range doc.root.GetArray("messages") {
			content := msg.GetStringBytes("content")
			if content == nil {
				continue
			}
			if sender != "" && !strings.Contains(string(msg.GetStringBytes("sender_name")), sender) {
				continue
			}
			text := string(content)
			if caseInsensitive {
				text = strings.ToLower(text)
			}
			if strings.Contains(text, keyword) {
				count++
			}
		}
	}
	return count
}
