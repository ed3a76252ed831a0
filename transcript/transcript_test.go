package transcript_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mpawlowski/relay/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *transcript.Transcript {
	t := transcript.New()
	t.Append(transcript.Turn{
		Input:     "add 10 and 15",
		Response:  "The result is: 25",
		ToolName:  "add_numbers",
		Timestamp: time.Now(),
	})
	t.Append(transcript.Turn{
		Input:     "hello",
		Response:  "Hi there!",
		Timestamp: time.Now(),
	})
	return t
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := sample()
	data, err := transcript.Marshal(original)
	require.NoError(t, err)

	restored, err := transcript.Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, original.ID, restored.ID)
	require.Len(t, restored.Turns, 2)
	assert.Equal(t, "add_numbers", restored.Turns[0].ToolName)
	assert.Equal(t, "The result is: 25", restored.Turns[0].Response)
	assert.Empty(t, restored.Turns[1].ToolName)
}

func TestUnmarshal_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	_, err := transcript.Unmarshal([]byte(`{"version":2}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported envelope version")
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	t.Run("round-trips through a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sessions", "one.json")
		original := sample()

		require.NoError(t, transcript.Save(path, original))

		restored, err := transcript.Load(path)
		require.NoError(t, err)
		assert.Equal(t, original.ID, restored.ID)
		assert.Len(t, restored.Turns, 2)
	})

	t.Run("file permissions are restrictive", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "t.json")
		require.NoError(t, transcript.Save(path, sample()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("no temp file is left behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "t.json")
		require.NoError(t, transcript.Save(path, sample()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "t.json", entries[0].Name())
	})

	t.Run("load of missing file fails", func(t *testing.T) {
		t.Parallel()

		_, err := transcript.Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
