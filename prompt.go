package relay

import "strings"

// preamble teaches the model its role and the invocation convention. The
// literal example must use the same delimiters the parser matches on.
const preamble = `You are a helpful assistant with access to tools.

To use a tool, reply with exactly one block of this form and nothing after it:

` + ToolCallOpen + `
{"name": "tool_name", "arguments": {"argument_name": "value"}}
` + ToolCallClose + `

Only call a tool when it is needed to answer the user. Otherwise reply in
plain text.

These are the available tools:`

// SystemPrompt serializes the tools into the system instruction block: the
// preamble, then one JSON descriptor per line between the catalog delimiters,
// in the order given. It is a pure function of its input and is rebuilt on
// every turn, so registry changes between turns are always reflected.
func SystemPrompt(tools []*Tool) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n")
	b.WriteString(ToolsOpen)
	b.WriteString("\n")
	for _, t := range tools {
		b.Write(t.Descriptor())
		b.WriteString("\n")
	}
	b.WriteString(ToolsClose)
	b.WriteString("\n")
	return b.String()
}

// TurnPrompt embeds the user input into the fixed turn template, appended
// after the system prompt. The trailing "Assistant:" positions the model to
// generate its reply; "User:" doubles as a stop sequence marking the turn
// boundary.
func TurnPrompt(system, input string) string {
	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\nUser: ")
	b.WriteString(input)
	b.WriteString("\nAssistant:")
	return b.String()
}
