// Package tui provides a Bubble Tea chat interface for the relay agent.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpawlowski/relay/agent"
)

// TurnFunc runs one dispatch turn for the given user input. The onEvent
// callback receives turn events as dispatch progresses. The function blocks
// until the turn completes or the context is cancelled.
type TurnFunc func(ctx context.Context, input string, onEvent func(agent.Event)) (string, error)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown — when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// TurnEventMsg wraps a turn event for delivery to the Bubble Tea model.
type TurnEventMsg struct {
	Event agent.Event
}

// TurnDoneMsg signals that a turn has completed.
type TurnDoneMsg struct {
	Response string
	Err      error
}
