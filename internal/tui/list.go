package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerItem is the number of terminal lines each chat occupies in the list.
const linesPerItem = 2

// renderList renders the left panel: the filtered chat list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.filtered) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No chats")
		return empty
	}

	var lines []string
	for i, e := range m.filtered {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		rows := formatEntryLine(e, width, i == m.cursor)
		lines = append(lines, rows...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatEntryLine formats a single chat as two lines:
//
//	line 1: [>] kind  title
//	line 2:    participants, message count (dimmed)
func formatEntryLine(e Entry, width int, selected bool) []string {
	var kind string
	if e.Group {
		kind = styleKindGroup.Render("group ")
	} else {
		kind = styleKindDirect.Render("direct")
	}

	title := strings.ReplaceAll(e.Chat.Title, "\n", " ")
	titleMax := width - 2 - 7 - 2 // prefix + kind + padding
	if titleMax < 0 {
		titleMax = 0
	}
	if runewidth.StringWidth(title) > titleMax {
		title = runewidth.Truncate(title, titleMax, "")
	}

	line1 := fmt.Sprintf("%s %s", kind, title)
	if selected {
		line1 = styleListSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	names := make([]string, 0, len(e.Chat.Participants))
	for _, p := range e.Chat.Participants {
		names = append(names, p.Name)
	}
	detail := fmt.Sprintf("%s · %d msgs", strings.Join(names, ", "), len(e.Chat.Messages))
	detailMax := width - 4 // indent
	if detailMax < 0 {
		detailMax = 0
	}
	if runewidth.StringWidth(detail) > detailMax {
		detail = runewidth.Truncate(detail, detailMax, "")
	}
	line2 := "    " + lipgloss.NewStyle().Foreground(colorDim).Render(detail)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
