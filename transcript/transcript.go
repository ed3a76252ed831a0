// Package transcript persists a chat session's turns as JSON. The dispatch
// core itself writes no files; persistence is a front-end concern.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Turn records one completed dispatch turn. ToolName and ToolResult are set
// only when the model invoked a tool.
type Turn struct {
	Input      string    `json:"input"`
	Response   string    `json:"response"`
	ToolName   string    `json:"tool_name,omitempty"`
	ToolResult string    `json:"tool_result,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Transcript is an ordered record of turns from one session.
type Transcript struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Turns     []Turn    `json:"turns"`
}

// envelope is the v1 wire format for a persisted transcript.
type envelope struct {
	Version int `json:"version"`
	Transcript
}

// New creates an empty transcript with a time-derived ID.
func New() *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        now.Format("20060102-150405"),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append records a turn and bumps UpdatedAt.
func (t *Transcript) Append(turn Turn) {
	t.Turns = append(t.Turns, turn)
	t.UpdatedAt = time.Now()
}

// Marshal serializes a transcript in v1 envelope format.
func Marshal(t *Transcript) ([]byte, error) {
	return json.MarshalIndent(envelope{Version: 1, Transcript: *t}, "", "  ")
}

// Unmarshal deserializes a transcript from v1 envelope format.
func Unmarshal(data []byte) (*Transcript, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	t := env.Transcript
	return &t, nil
}

// Save writes a transcript to a JSON file, creating parent directories as
// needed. The write goes through a temp file and rename so a crash cannot
// leave a half-written transcript.
func Save(path string, t *Transcript) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a transcript from a JSON file.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Unmarshal(data)
}
