package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/pkrivanek/msgstats/internal/graph"
)

const (
	colorReset   = "\033[0m"
	colorDim     = "\033[2m"
	colorBoldRed = "\033[1;31m" // keyword highlights
	colorShare   = "\033[2;36m" // dim cyan for share/attachment lines
)

// senderColors is the palette cycled over a chat's participants.
var senderColors = []string{
	"\033[1;34m", // bold blue
	"\033[1;32m", // bold green
	"\033[1;35m", // bold magenta
	"\033[1;33m", // bold yellow
	"\033[1;36m", // bold cyan
}

type Options struct {
	Keyword string // substring to highlight in message content
	Width   int    // wrap width (0 = no wrap)
	Limit   int    // max messages to render (0 = all)
	Group   bool   // label the chat as a group chat in the header
}

// highlightKeyword wraps case-insensitive matches of keyword in bold red ANSI codes.
func highlightKeyword(text, keyword string) string {
	if keyword == "" {
		return text
	}
	lower := strings.ToLower(keyword)
	i := 0
	for i < len(text) {
		idx := strings.Index(strings.ToLower(text[i:]), lower)
		if idx < 0 {
			break
		}
		pos := i + idx
		orig := text[pos : pos+len(keyword)]
		replacement := colorBoldRed + orig + colorReset
		text = text[:pos] + replacement + text[pos+len(keyword):]
		i = pos + len(replacement)
	}
	return text
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// senderColor assigns each participant a stable color from the palette.
func senderColor(chat *graph.Chat, sender *graph.Person) string {
	for i, p := range chat.Participants {
		if p == sender {
			return senderColors[i%len(senderColors)]
		}
	}
	return colorDim
}

// Chat renders a chat transcript in load order and returns it as a string.
func Chat(chat *graph.Chat, opts Options) string {
	var b strings.Builder
	separator := colorDim + "--------------------------------------------------" + colorReset

	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
		}
	}

	kind := "direct"
	if opts.Group {
		kind = "group"
	}
	names := make([]string, 0, len(chat.Participants))
	for _, p := range chat.Participants {
		names = append(names, p.Name)
	}
	writeLine(fmt.Sprintf("%s--- %s [%s] %s ---%s",
		colorDim, chat.Title, kind, strings.Join(names, ", "), colorReset))

	msgs := chat.Messages
	if opts.Limit > 0 && len(msgs) > opts.Limit {
		writeLine(fmt.Sprintf("%s... (%d messages omitted) ...%s", colorDim, len(msgs)-opts.Limit, colorReset))
		msgs = msgs[len(msgs)-opts.Limit:]
	}

	for i, msg := range msgs {
		if i > 0 {
			writeLine(separator)
		}
		renderMessage(writeLine, chat, msg, opts)
	}

	return b.String()
}

func renderMessage(writeLine func(string), chat *graph.Chat, msg *graph.Message, opts Options) {
	color := senderColor(chat, msg.Sender)
	writeLine(fmt.Sprintf("%s%s >%s %s%s%s",
		color, msg.Sender.Name, colorReset,
		colorDim, msg.Sent.Format("2006-01-02 15:04"), colorReset))

	if msg.Content != nil {
		text := highlightKeyword(*msg.Content, opts.Keyword)
		for _, line := range strings.Split(text, "\n") {
			writeLine("  " + line)
		}
	}

	for _, photo := range msg.Photos {
		writeLine(fmt.Sprintf("  %s[photo] %s%s", colorShare, photo.URI, colorReset))
	}
	for _, video := range msg.Videos {
		writeLine(fmt.Sprintf("  %s[video] %s%s", colorShare, video.URI, colorReset))
	}

	if msg.Share != nil {
		var parts []string
		if msg.Share.Link != nil {
			parts = append(parts, *msg.Share.Link)
		}
		if msg.Share.Text != nil {
			parts = append(parts, *msg.Share.Text)
		}
		writeLine(fmt.Sprintf("  %s[share] %s%s", colorShare, strings.Join(parts, " | "), colorReset))
	}

	if len(msg.Reactions) > 0 {
		var parts []string
		for _, r := range msg.Reactions {
			parts = append(parts, fmt.Sprintf("%s %s", r.Kind, r.Actor.Name))
		}
		writeLine(fmt.Sprintf("  %s%s%s", colorDim, strings.Join(parts, ", "), colorReset))
	}

	writeLine("") // blank line after message
}
