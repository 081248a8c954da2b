package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/keymap"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/messages"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/styles"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/views/ask"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/views/threads"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	askView     *ask.View
	threadsView *threads.View

	currentView messages.ViewType
	width       int
	height      int
}

// NewApp creates the TUI application from the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		askView:     ask.NewView(s, km, ports.Assistant),
		threadsView: threads.NewView(s, km, ports.Assistant),
		currentView: messages.ViewAsk,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
		a.askView.WithContext(ctx)
		a.threadsView.WithContext(ctx)
	}
	return a
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.askView.Init()
}

// Update routes messages to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.askView.SetDimensions(msg.Width, msg.Height)
		a.threadsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keymap.Threads) && a.currentView == messages.ViewAsk {
			a.currentView = messages.ViewThreads
			return a, a.threadsView.Init()
		}
		if key.Matches(msg, a.keymap.Back) && a.currentView == messages.ViewThreads {
			a.currentView = messages.ViewAsk
			return a, nil
		}

	case messages.ThreadLoaded:
		if msg.Err == nil && msg.Thread != nil {
			a.askView.SetThread(msg.Thread)
			a.currentView = messages.ViewAsk
			return a, nil
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil
	}

	switch a.currentView {
	case messages.ViewThreads:
		var cmd tea.Cmd
		a.threadsView, cmd = a.threadsView.Update(msg)
		return a, cmd
	default:
		var cmd tea.Cmd
		a.askView, cmd = a.askView.Update(msg)
		return a, cmd
	}
}

// View renders the active view with a status line.
func (a *App) View() string {
	var body string
	switch a.currentView {
	case messages.ViewThreads:
		body = a.threadsView.View()
	default:
		body = a.askView.View()
	}

	status := a.styles.Help.Render("enter ask · ctrl+t threads · ctrl+c quit")
	if a.ports.Session != nil && a.ports.Session.Status() == nil {
		status = a.styles.Error.Render("not signed in: run 'lawadmin login'")
	}

	return body + "\n\n" + status
}
