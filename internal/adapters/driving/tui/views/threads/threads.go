// Package threads provides the cached-conversation list view for the TUI.
package threads

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/keymap"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/messages"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/styles"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
)

// View lists cached conversations and lets the user reopen one.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	assistant driving.AssistantService
	ctx       context.Context

	threads  []domain.Thread
	selected int
	err      error

	width  int
	height int
}

// NewView creates a new threads view.
func NewView(s *styles.Styles, km *keymap.KeyMap, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		assistant: assistant,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the thread list.
func (v *View) Init() tea.Cmd {
	return v.loadCmd()
}

// SetDimensions updates the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Update handles messages for the threads view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ThreadsLoaded:
		v.threads = msg.Threads
		v.err = msg.Err
		if v.selected >= len(v.threads) {
			v.selected = 0
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keymap.Down):
			if v.selected < len(v.threads)-1 {
				v.selected++
			}
		case key.Matches(msg, v.keymap.Select):
			if len(v.threads) > 0 {
				return v, v.openCmd(v.threads[v.selected].ID)
			}
		}
	}

	return v, nil
}

// loadCmd fetches the cached thread list.
func (v *View) loadCmd() tea.Cmd {
	return func() tea.Msg {
		threads, err := v.assistant.Threads(v.ctx)
		return messages.ThreadsLoaded{Threads: threads, Err: err}
	}
}

// openCmd loads one conversation with its messages.
func (v *View) openCmd(id string) tea.Cmd {
	return func() tea.Msg {
		thread, err := v.assistant.Thread(v.ctx, id)
		return messages.ThreadLoaded{Thread: thread, Err: err}
	}
}

// View renders the threads view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Conversations"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	}
	if len(v.threads) == 0 {
		b.WriteString(v.styles.Muted.Render("No cached conversations yet."))
		return b.String()
	}

	for i, thread := range v.threads {
		line := fmt.Sprintf("%s  %s",
			thread.UpdatedAt.Local().Format("2006-01-02 15:04"), thread.Title)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + v.styles.Help.Render("enter open · esc back"))
	return b.String()
}
