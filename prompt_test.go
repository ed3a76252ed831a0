package relay_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mpawlowski/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogLines returns the lines between the tool catalog delimiters.
func catalogLines(t *testing.T, prompt string) []string {
	t.Helper()
	_, after, found := strings.Cut(prompt, relay.ToolsOpen+"\n")
	require.True(t, found, "catalog open delimiter missing")
	body, _, found := strings.Cut(after, relay.ToolsClose)
	require.True(t, found, "catalog close delimiter missing")
	body = strings.TrimSuffix(body, "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

func TestSystemPrompt(t *testing.T) {
	t.Parallel()

	t.Run("one descriptor line per tool in registration order", func(t *testing.T) {
		t.Parallel()

		reg := relay.NewRegistry(
			addTool(t),
			namedTool(t, "roll_dice"),
			namedTool(t, "current_time"),
		)
		prompt := relay.SystemPrompt(reg.Tools())

		lines := catalogLines(t, prompt)
		require.Len(t, lines, 3)

		wantNames := []string{"add_numbers", "roll_dice", "current_time"}
		for i, line := range lines {
			var desc struct {
				Name string `json:"name"`
			}
			require.NoError(t, json.Unmarshal([]byte(line), &desc), "line %d is not valid JSON", i)
			assert.Equal(t, wantNames[i], desc.Name)
		}
	})

	t.Run("empty registry yields empty catalog", func(t *testing.T) {
		t.Parallel()

		prompt := relay.SystemPrompt(nil)
		assert.Empty(t, catalogLines(t, prompt))
	})

	t.Run("contains the invocation example", func(t *testing.T) {
		t.Parallel()

		prompt := relay.SystemPrompt(nil)
		assert.Contains(t, prompt, relay.ToolCallOpen)
		assert.Contains(t, prompt, relay.ToolCallClose)
		assert.Contains(t, prompt, `"arguments"`)
	})

	t.Run("descriptor round-trips through the catalog", func(t *testing.T) {
		t.Parallel()

		tool := addTool(t)
		prompt := relay.SystemPrompt([]*relay.Tool{tool})
		lines := catalogLines(t, prompt)
		require.Len(t, lines, 1)

		var decoded struct {
			Name        string                       `json:"name"`
			Description string                       `json:"description"`
			Parameters  map[string]map[string]string `json:"parameters"`
		}
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
		assert.Equal(t, tool.Name, decoded.Name)
		assert.Equal(t, tool.Description, decoded.Description)
		require.Len(t, decoded.Parameters, len(tool.Params))
		for _, p := range tool.Params {
			assert.Contains(t, decoded.Parameters, p.Name)
		}
	})
}

func TestTurnPrompt(t *testing.T) {
	t.Parallel()

	prompt := relay.TurnPrompt("SYSTEM", "what time is it?")
	assert.Equal(t, "SYSTEM\nUser: what time is it?\nAssistant:", prompt)
}
