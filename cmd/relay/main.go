// Command relay is a chat interface for tool-calling language models.
//
// Usage:
//
//	relay                        # llama.cpp server at localhost:8080
//	relay -p "add 10 and 15"     # one-shot, prints the response
//	GEMINI_API_KEY=gk-... RELAY_BACKEND_PROVIDER=gemini relay
//
// Flags:
//
//	-c, --config string      Path to config file (YAML)
//	-p, --prompt string      Run a single turn and print the response
//	-t, --transcript string  Path to transcript file to resume and save
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mpawlowski/relay"
	"github.com/mpawlowski/relay/agent"
	"github.com/mpawlowski/relay/builtin"
	"github.com/mpawlowski/relay/config"
	"github.com/mpawlowski/relay/transcript"
	"github.com/mpawlowski/relay/tui"
)

func main() {
	var (
		configPath     string
		promptFlag     string
		transcriptPath string
	)

	rootCmd := &cobra.Command{
		Use:           "relay",
		Short:         "Chat with a tool-calling language model",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, promptFlag, transcriptPath)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (YAML)")
	rootCmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "Run a single turn and print the response")
	rootCmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "Path to transcript file to resume and save")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "relay: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, promptFlag, transcriptPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	oneShot := promptFlag != ""

	// In TUI mode stderr is covered by the alternate screen, so logs go to
	// a file instead.
	logDst := io.Writer(os.Stderr)
	if !oneShot {
		f, err := openLogFile()
		if err == nil {
			defer f.Close()
			logDst = f
		} else {
			logDst = io.Discard
		}
	}
	logger := newLogger(logDst, cfg.LogLevel, cfg.LogFormat)

	backend, err := resolveBackend(ctx, cfg.Backend, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}

	registry := relay.NewRegistry(builtin.Tools()...)

	baseOpts := []agent.Option{
		agent.WithLogger(logger),
		agent.WithMaxTokens(cfg.Generation.MaxTokens),
		agent.WithTemperature(cfg.Generation.Temperature),
		agent.WithStop(cfg.Generation.Stop),
	}

	tr, err := loadOrCreateTranscript(transcriptPath)
	if err != nil {
		return err
	}

	if oneShot {
		ag := agent.New(backend, registry, baseOpts...)
		response, err := ag.Run(ctx, promptFlag)
		if err != nil {
			return err
		}
		fmt.Println(response)
		tr.Append(transcript.Turn{Input: promptFlag, Response: response})
		return saveTranscript(transcriptPath, tr)
	}

	// The agent is rebuilt per turn so the observer can forward events to
	// the TUI through the per-turn callback.
	turn := func(ctx context.Context, input string, onEvent func(agent.Event)) (string, error) {
		opts := append([]agent.Option{agent.WithObserver(onEvent)}, baseOpts...)
		ag := agent.New(backend, registry, opts...)
		return ag.Run(ctx, input)
	}

	model := tui.New(turn, relay.DefaultTheme(), tui.WithTurnHook(func(input, response, toolName string) {
		tr.Append(transcript.Turn{Input: input, Response: response, ToolName: toolName})
	}))

	if err := tui.Run(ctx, model); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	if err := saveTranscript(transcriptPath, tr); err != nil {
		return err
	}
	return nil
}

// loadOrCreateTranscript resumes the transcript at path when it exists, and
// starts a fresh one otherwise.
func loadOrCreateTranscript(path string) (*transcript.Transcript, error) {
	if path == "" {
		return transcript.New(), nil
	}
	tr, err := transcript.Load(path)
	switch {
	case err == nil:
		return tr, nil
	case errors.Is(err, os.ErrNotExist):
		return transcript.New(), nil
	default:
		return nil, fmt.Errorf("load transcript: %w", err)
	}
}

// saveTranscript writes the transcript to path, or to the default location
// when no path was given. Empty transcripts are not saved.
func saveTranscript(path string, tr *transcript.Transcript) error {
	if len(tr.Turns) == 0 {
		return nil
	}
	if path == "" {
		path = defaultTranscriptPath(tr.ID)
		defer fmt.Fprintf(os.Stderr, "Transcript saved to %s\n", path)
	}
	if err := transcript.Save(path, tr); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}

func defaultTranscriptPath(id string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".relay", "transcripts", id+".json")
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".relay")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "relay.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// newLogger builds a slog.Logger per the configured level and format.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
