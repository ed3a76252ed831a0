package tui_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpawlowski/relay"
	"github.com/mpawlowski/relay/agent"
	"github.com/mpawlowski/relay/tui"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, run tui.TurnFunc) tui.Model {
	t.Helper()
	return initModelWithSize(t, run, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, run tui.TurnFunc, width, height int) tui.Model {
	t.Helper()
	m := tui.New(run, relay.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	model, ok := updated.(tui.Model)
	require.True(t, ok)
	return model
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(tui.Model)
	require.True(t, ok)
	return model
}

// nopTurn is a turn function that returns an empty response.
func nopTurn(_ context.Context, _ string, _ func(agent.Event)) (string, error) {
	return "", nil
}

// typeInputString types a string into the text input rune by rune.
func typeInputString(t *testing.T, m tui.Model, s string) tui.Model {
	t.Helper()
	for _, r := range s {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
