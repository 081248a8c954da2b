package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dochieno/lawafricadigitalhub-sub000/internal/adapters/driving/tui/messages"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/domain"
	"github.com/dochieno/lawafricadigitalhub-sub000/internal/core/ports/driving"
)

// fakeAssistant implements driving.AssistantService for TUI tests.
type fakeAssistant struct {
	threads []domain.Thread
}

func (f *fakeAssistant) Ask(_ context.Context, threadID, question string) (*driving.AskResult, error) {
	msg := &domain.AssistantMessage{
		ID:              "reply-1",
		ThreadID:        "thread-1",
		Role:            domain.RoleAssistant,
		ContentMarkdown: "## Overview\nAnswer to: " + question,
	}
	return &driving.AskResult{
		Message:  msg,
		Sections: []domain.Section{{Title: "Overview", Key: domain.SectionOverview, Content: "Answer to: " + question}},
	}, nil
}

func (f *fakeAssistant) Summarise(context.Context, string) (*driving.AskResult, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeAssistant) Threads(context.Context) ([]domain.Thread, error) {
	return f.threads, nil
}

func (f *fakeAssistant) Thread(_ context.Context, id string) (*domain.Thread, error) {
	for _, t := range f.threads {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeSession implements driving.SessionService for TUI tests.
type fakeSession struct {
	token *domain.AccessToken
}

func (f *fakeSession) Login(context.Context, string, string) error            { return nil }
func (f *fakeSession) ConfirmTwoFactor(context.Context, string, string) error { return nil }
func (f *fakeSession) Logout() error                                          { return nil }
func (f *fakeSession) Status() *domain.AccessToken                            { return f.token }

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(NewPorts(&fakeAssistant{}, &fakeSession{token: &domain.AccessToken{Token: "tok"}}))
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresPorts(t *testing.T) {
	_, err := NewApp(nil)
	assert.ErrorIs(t, err, ErrInvalidPorts)

	_, err = NewApp(&Ports{Session: &fakeSession{}})
	assert.ErrorIs(t, err, ErrMissingAssistantService)

	_, err = NewApp(&Ports{Assistant: &fakeAssistant{}})
	assert.ErrorIs(t, err, ErrMissingSessionService)
}

func TestApp_StartsOnAskView(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, messages.ViewAsk, app.CurrentView())
}

func TestApp_QuitKey(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SwitchesToThreadsAndBack(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	app = model.(*App)
	assert.Equal(t, messages.ViewThreads, app.CurrentView())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewAsk, app.CurrentView())
}

func TestApp_ThreadLoadedReturnsToAsk(t *testing.T) {
	app := newTestApp(t)
	app.currentView = messages.ViewThreads

	model, _ := app.Update(messages.ThreadLoaded{Thread: &domain.Thread{
		ID: "thread-1",
		Messages: []domain.AssistantMessage{
			{Role: domain.RoleAssistant, ContentMarkdown: "## Overview\nCached."},
		},
	}})
	app = model.(*App)

	assert.Equal(t, messages.ViewAsk, app.CurrentView())
	assert.Equal(t, "thread-1", app.askView.ThreadID())
	assert.Contains(t, app.View(), "Cached.")
}

func TestApp_ViewShowsSignedOutWarning(t *testing.T) {
	app, err := NewApp(NewPorts(&fakeAssistant{}, &fakeSession{}))
	require.NoError(t, err)

	assert.Contains(t, app.View(), "not signed in: run 'lawadmin login'")
}

func TestApp_WindowSizePropagates(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(*App)
	assert.Equal(t, 120, app.width)
}
