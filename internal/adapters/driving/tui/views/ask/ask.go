// Package ask provides the assistant question-and-reply view for the TUI.
package ask

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/keymap"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/messages"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/styles"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/render"
)

// state tracks the view's phase within one question/reply cycle.
type state int

const (
	stateInput state = iota
	stateWaiting
	stateRevealing
	stateDone
)

// View is the ask view: a question input, a progress spinner and the
// sectioned reply with a typewriter reveal.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  textinput.Model
	spin   spinner.Model

	assistant driving.AssistantService
	ctx       context.Context

	state    state
	threadID string
	sections []domain.Section
	sources  []domain.SourceRef
	reveal   *render.Reveal
	revealed string
	err      error

	width  int
	height int
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, assistant driving.AssistantService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	input := textinput.New()
	input.Placeholder = "Ask a legal question..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:    s,
		keymap:    km,
		input:     input,
		spin:      spin,
		assistant: assistant,
		ctx:       context.Background(),
		state:     stateInput,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// ThreadID returns the active thread, empty before the first reply.
func (v *View) ThreadID() string {
	return v.threadID
}

// SetThread switches the view to continue an existing conversation.
// Any reveal still running belongs to the previous reply and is
// cancelled so its stale frames never overwrite the new content.
func (v *View) SetThread(thread *domain.Thread) {
	if v.reveal != nil {
		v.reveal.Cancel()
		v.reveal = nil
	}
	v.threadID = thread.ID
	v.sections = nil
	v.sources = nil
	v.revealed = ""
	v.state = stateInput

	// Show the last reply so the conversation has visible context.
	for i := len(thread.Messages) - 1; i >= 0; i-- {
		if thread.Messages[i].Role == domain.RoleAssistant {
			v.sections = render.ParseIntoBlocks(thread.Messages[i].ContentMarkdown)
			v.sources = thread.Messages[i].Sources
			v.state = stateDone
			break
		}
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// SetDimensions updates the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.Width = width - 6
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if v.state == stateWaiting {
			var cmd tea.Cmd
			v.spin, cmd = v.spin.Update(msg)
			return v, cmd
		}
		return v, nil

	case messages.AskCompleted:
		return v.handleAskCompleted(msg)

	case messages.RevealFrame:
		// Frames from a cancelled reveal may still be in flight.
		if v.state != stateRevealing || v.reveal == nil {
			return v, nil
		}
		v.revealed = msg.Text
		return v, waitFrame(v.reveal.C)

	case messages.RevealDone:
		if v.reveal == nil {
			return v, nil
		}
		v.reveal = nil
		if v.state == stateRevealing {
			v.state = stateDone
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch v.state {
	case stateRevealing:
		// Esc skips straight to the full reply.
		if key.Matches(msg, v.keymap.Cancel) {
			v.reveal.Cancel()
			return v, nil
		}
		return v, nil

	case stateWaiting:
		return v, nil

	default:
		if key.Matches(msg, v.keymap.Submit) {
			question := strings.TrimSpace(v.input.Value())
			if question == "" {
				return v, nil
			}
			v.state = stateWaiting
			v.err = nil
			v.input.SetValue("")
			return v, tea.Batch(v.spin.Tick, v.askCmd(v.threadID, question))
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
}

func (v *View) handleAskCompleted(msg messages.AskCompleted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.err = msg.Err
		v.state = stateInput
		return v, nil
	}

	v.sections = msg.Result.Sections
	v.sources = nil
	if msg.Result.Message != nil {
		v.threadID = msg.Result.Message.ThreadID
		v.sources = msg.Result.Message.Sources
	}

	// Reveal the whole reply progressively, then swap in the cards.
	var full strings.Builder
	for i, section := range v.sections {
		if i > 0 {
			full.WriteString("\n\n")
		}
		full.WriteString(section.Title + "\n" + section.Content)
	}
	v.reveal = render.NewReveal(full.String(), true)
	v.revealed = ""
	v.state = stateRevealing
	return v, waitFrame(v.reveal.C)
}

// askCmd sends the question off-loop and reports back as a message.
func (v *View) askCmd(threadID, question string) tea.Cmd {
	return func() tea.Msg {
		result, err := v.assistant.Ask(v.ctx, threadID, question)
		return messages.AskCompleted{Result: result, Err: err}
	}
}

// waitFrame blocks for the next typewriter frame.
func waitFrame(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		text, ok := <-ch
		if !ok {
			return messages.RevealDone{}
		}
		return messages.RevealFrame{Text: text}
	}
}

// View renders the ask view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Research Assistant"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Width(v.width - 4).Render(v.input.View()))
	b.WriteString("\n\n")

	switch v.state {
	case stateWaiting:
		b.WriteString(v.spin.View() + v.styles.Muted.Render(" consulting the library..."))

	case stateRevealing:
		b.WriteString(v.styles.Normal.Render(v.revealed))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("esc skip reveal"))

	case stateDone:
		for i, section := range v.sections {
			if i > 0 {
				b.WriteString("\n")
			}
			card := v.styles.SectionHeading.Render(section.Title) + "\n" +
				v.styles.Normal.Render(section.Content)
			b.WriteString(v.styles.Card.Width(v.width - 4).Render(card))
			b.WriteString("\n")
		}
		if len(v.sources) > 0 {
			b.WriteString(v.styles.SectionHeading.Render("CITATIONS"))
			b.WriteString("\n")
			for _, src := range v.sources {
				line := src.Title
				if src.Citation != "" {
					line += ", " + src.Citation
				}
				b.WriteString(v.styles.Muted.Render("  • "+line) + "\n")
			}
		}
		if v.threadID != "" {
			b.WriteString(v.styles.Muted.Render("thread " + v.threadID))
		}
	}

	if v.err != nil {
		b.WriteString("\n" + v.styles.Error.Render("Error: "+v.err.Error()))
	}

	return b.String()
}
