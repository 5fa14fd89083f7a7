package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkrivanek/msgstats/internal/graph"
	"github.com/pkrivanek/msgstats/internal/render"
)

// Entry is one chat shown in the browser together with its classification.
type Entry struct {
	Chat  *graph.Chat
	Group bool
}

// previewRenderedMsg is sent when an async transcript render completes.
type previewRenderedMsg struct {
	key     string
	content string
}

type model struct {
	entries     []Entry // all chats, load order
	filtered    []Entry
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewKey  string // avoids re-rendering the transcript already shown
	width       int
	height      int
	ready       bool
	quitting    bool
	openEntry   *Entry
}

func initialModel(entries []Entry) model {
	ti := textinput.New()
	ti.Placeholder = "Filter by title or participant..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		entries:     entries,
		filtered:    entries,
		filterInput: ti,
		preview:     viewport.New(0, 0),
	}
}

// Run starts the chat browser and blocks until it exits. If the user selects
// a chat, its source file path is copied to the clipboard.
func Run(entries []Entry) error {
	m := initialModel(entries)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.openEntry != nil {
		return copySourcePath(fm.openEntry.Chat)
	}
	return nil
}

// copySourcePath puts the chat's export file path on the clipboard, falling
// back to printing it when no clipboard is available.
func copySourcePath(chat *graph.Chat) error {
	path := chat.SourcePath
	if path == "" {
		fmt.Printf("%s\n", chat.Title)
		return nil
	}
	if err := clipboard.WriteAll(path); err != nil {
		fmt.Printf("%s\n", path)
		return nil
	}
	fmt.Printf("Copied to clipboard: %s\n", path)
	return nil
}

// matches reports whether the entry's title or any participant name contains
// the filter as a case-insensitive substring.
func matches(e Entry, filter string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	if strings.Contains(strings.ToLower(e.Chat.Title), filter) {
		return true
	}
	for _, p := range e.Chat.Participants {
		if strings.Contains(strings.ToLower(p.Name), filter) {
			return true
		}
	}
	return false
}

func (m *model) applyFilter() {
	filter := m.filterInput.Value()
	var filtered []Entry
	for _, e := range m.entries {
		if matches(e, filter) {
			filtered = append(filtered, e)
		}
	}
	m.filtered = filtered
	m.cursor = 0
	m.listOffset = 0
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if len(m.filtered) > 0 {
		cmds = append(cmds, m.loadCurrentPreview())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = viewport.New(m.previewWidth(), m.panelHeight())
		m.preview.Style = stylePanelBorder
		m.previewKey = ""
		if len(m.filtered) > 0 {
			cmds = append(cmds, m.loadCurrentPreview())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				e := m.filtered[m.cursor]
				m.openEntry = &e
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to the filter input
		var tiCmd tea.Cmd
		prev := m.filterInput.Value()
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		if m.filterInput.Value() != prev {
			m.applyFilter()
			if len(m.filtered) > 0 {
				cmds = append(cmds, m.loadCurrentPreview())
			} else {
				m.preview.SetContent("")
				m.previewKey = ""
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.filtered) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			visibleItems := m.panelHeight() / linesPerItem
			maxOffset := len(m.filtered) - visibleItems
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.filtered) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				cmds = append(cmds, m.loadCurrentPreview())
			}
			return m, tea.Batch(cmds...)

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			if vpCmd != nil {
				cmds = append(cmds, vpCmd)
			}
			return m, tea.Batch(cmds...)
		}

		return m, nil

	case previewRenderedMsg:
		if msg.key == m.previewKey {
			return m, nil
		}
		// Check if this preview is still the one we want
		if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
			if entryKey(m.filtered[m.cursor]) != msg.key {
				return m, nil // stale preview
			}
		}
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		m.previewKey = msg.key
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listContent := m.renderList(listW, panelH)
	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(listContent)

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	status := m.statusBar()

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, status)
}

// layout helpers

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1

	if x >= 1 && x <= lw {
		itemIndex := m.listOffset + (relY / linesPerItem)
		return regionList, itemIndex
	}

	if x > listBoxRight+1 {
		return regionPreview, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%d/%d chats", len(m.filtered), len(m.entries)))
	parts = append(parts, "click/up/dn navigate")
	parts = append(parts, "scroll/C-u/C-d preview")
	parts = append(parts, "Enter copy file path")
	parts = append(parts, "Esc quit")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func (m model) loadCurrentPreview() tea.Cmd {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	e := m.filtered[m.cursor]
	key := entryKey(e)
	if key == m.previewKey {
		return nil // already showing this transcript
	}
	width := m.previewWidth()
	return func() tea.Msg {
		content := render.Chat(e.Chat, render.Options{Width: width, Group: e.Group})
		return previewRenderedMsg{key: key, content: content}
	}
}

func entryKey(e Entry) string {
	return fmt.Sprintf("%s:%s:%d", e.Chat.SourcePath, e.Chat.Title, len(e.Chat.Messages))
}
