package tui

import (
	"encoding/json"
	"fmt"

	"github.com/mpawlowski/relay"
	"github.com/mpawlowski/relay/markdown"
)

// block is a renderable element in the conversation. View takes a width
// parameter so the root model controls layout and blocks are testable in
// isolation.
type block interface {
	View(width int) string
}

// userBlock shows the submitted input.
type userBlock struct {
	text   string
	styles Styles
}

func (b userBlock) View(width int) string {
	return b.styles.User.Render(Preview("> "+b.text, width))
}

// answerBlock shows the final response, rendered as markdown.
type answerBlock struct {
	text  string
	theme relay.Theme
}

func (b answerBlock) View(width int) string {
	return markdown.Render(b.text, width, b.theme)
}

// toolCallBlock shows a parsed invocation before it executes.
type toolCallBlock struct {
	call   relay.ToolCall
	styles Styles
}

func (b toolCallBlock) View(width int) string {
	args, err := json.Marshal(b.call.Arguments)
	if err != nil {
		args = []byte("{}")
	}
	line := fmt.Sprintf("⚙ %s %s", b.call.Name, args)
	return b.styles.ToolCall.Render(Preview(line, width))
}

// toolResultBlock shows the outcome of a tool execution.
type toolResultBlock struct {
	name   string
	detail string
	isErr  bool
	styles Styles
}

func (b toolResultBlock) View(width int) string {
	if b.isErr {
		return b.styles.Error.Render(Preview("✗ "+b.name+": "+b.detail, width))
	}
	return b.styles.Success.Render(Preview("✓ "+b.name+" → "+b.detail, width))
}
