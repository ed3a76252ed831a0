package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mpawlowski/relay"
	"github.com/mpawlowski/relay/agent"
)

var _ tea.Model = Model{}

// turnResult carries the final response (or error) of a finished turn.
type turnResult struct {
	response string
	err      error
}

// Model is the Bubble Tea model for the relay chat TUI.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	run    TurnFunc
	theme  relay.Theme
	styles Styles

	blocks []block

	// lastTool remembers the most recent tool call of the running turn so
	// the transcript hook can record it alongside the response.
	lastTool string
	onTurn   func(input, response, toolName string)

	pendingInput string
	running      bool
	cancel       context.CancelFunc
	eventCh      chan agent.Event
	doneCh       chan turnResult
	err          error
	ready        bool
}

// Option configures a Model.
type Option func(*Model)

// WithTurnHook sets a callback invoked after every completed turn with the
// input, the final response, and the invoked tool name ("" when the answer
// was plain text). Used for transcript recording.
func WithTurnHook(fn func(input, response, toolName string)) Option {
	return func(m *Model) { m.onTurn = fn }
}

// New creates a new TUI Model with the given turn function and theme.
func New(run TurnFunc, theme relay.Theme, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	m := Model{
		Input:  ti,
		run:    run,
		theme:  theme,
		styles: NewStyles(theme),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Running returns whether a turn is currently in flight.
func (m Model) Running() bool { return m.running }

// Err returns the last turn error, if any.
func (m Model) Err() error { return m.err }

// SetRunning is a test helper that puts the model in a running state.
func SetRunning(m Model) (Model, tea.Cmd) {
	m.running = true
	return m, nil
}

// SetRunningWithCancel is a test helper that puts the model in a running state
// with a cancel function.
func SetRunningWithCancel(m Model, cancel func()) (Model, tea.Cmd) {
	m.running = true
	m.cancel = cancel
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TurnEventMsg:
		m = m.processEvent(msg.Event)
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		if m.eventCh != nil {
			return m, listenForEvent(m.eventCh, m.doneCh)
		}
		return m, nil

	case TurnDoneMsg:
		return m.handleTurnDone(msg)
	}

	// Pass remaining messages to sub-components. The viewport always
	// receives messages for scrolling (keyboard and mouse).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusH := 1
	gapH := 2 // newlines between sections
	vpHeight := msg.Height - inputH - statusH - gapH
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.Viewport.SetContent(m.renderContent())
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.running {
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)
	}

	// When idle, pass keys to both the input (for typing) and the viewport
	// (for scrolling). Only forward non-character keys to the viewport to
	// avoid conflicts (e.g. 'j'/'k' are viewport scroll AND text characters).
	if !m.running {
		var cmds []tea.Cmd
		var cmd tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.err = nil
	m.pendingInput = text
	m.lastTool = ""

	m.blocks = append(m.blocks, userBlock{text: text, styles: m.styles})
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.eventCh = make(chan agent.Event, 16)
	m.doneCh = make(chan turnResult, 1)
	m.running = true

	m.Input.Blur()

	return m, tea.Batch(
		startTurn(m.run, ctx, text, m.eventCh, m.doneCh),
		listenForEvent(m.eventCh, m.doneCh),
	)
}

func (m Model) handleTurnDone(msg TurnDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false
	m.cancel = nil
	m.eventCh = nil
	m.doneCh = nil

	switch {
	case msg.Err != nil && !errors.Is(msg.Err, context.Canceled):
		m.err = msg.Err
	case msg.Err == nil:
		m.blocks = append(m.blocks, answerBlock{text: msg.Response, theme: m.theme})
		if m.onTurn != nil {
			m.onTurn(m.pendingInput, msg.Response, m.lastTool)
		}
	}
	m.pendingInput = ""

	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	cmd := m.Input.Focus()
	return m, cmd
}

// processEvent appends a block for tool activity within the running turn.
// The raw completion text is not shown; the final response arrives with
// TurnDoneMsg.
func (m Model) processEvent(evt agent.Event) Model {
	switch e := evt.(type) {
	case agent.EventToolCall:
		m.lastTool = e.Call.Name
		m.blocks = append(m.blocks, toolCallBlock{call: e.Call, styles: m.styles})
	case agent.EventToolResult:
		m.blocks = append(m.blocks, toolResultBlock{name: e.Name, detail: e.Result, styles: m.styles})
	case agent.EventToolError:
		m.blocks = append(m.blocks, toolResultBlock{name: e.Name, detail: e.Err.Error(), isErr: true, styles: m.styles})
	}
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, blk := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(blk.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.running {
		return m.styles.Muted.Render("Generating...")
	}
	return m.styles.Muted.Render("Enter to send, Ctrl+C to quit")
}

// startTurn runs the turn in a goroutine and signals completion.
func startTurn(run TurnFunc, ctx context.Context, input string, eventCh chan<- agent.Event, doneCh chan<- turnResult) tea.Cmd {
	return func() tea.Msg {
		response, err := run(ctx, input, func(e agent.Event) {
			select {
			case eventCh <- e:
			case <-ctx.Done():
			}
		})
		close(eventCh)
		doneCh <- turnResult{response: response, err: err}
		return nil
	}
}

// listenForEvent waits for the next event from the channel. When the channel
// closes, it reads the result from doneCh and returns TurnDoneMsg.
func listenForEvent(ch <-chan agent.Event, doneCh <-chan turnResult) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			result := <-doneCh
			return TurnDoneMsg{Response: result.response, Err: result.err}
		}
		return TurnEventMsg{Event: evt}
	}
}
