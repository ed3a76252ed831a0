package builtin

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mpawlowski/relay"
)

type globArgs struct {
	Pattern string `mapstructure:"pattern"`
	Path    string `mapstructure:"path"`
}

// Glob returns a tool that finds files matching a glob pattern. Supports **
// for recursive matching.
func Glob() *relay.Tool {
	return mustTool(relay.NewTool(
		"glob",
		"Find files matching a glob pattern under a directory. Supports ** for recursive matching.",
		[]relay.Param{
			{Name: "pattern", Type: relay.TypeString},
			{Name: "path", Type: relay.TypeString},
		},
		executeGlob,
	))
}

func executeGlob(_ context.Context, args map[string]any) (any, error) {
	var a globArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Pattern == "" {
		return nil, fmt.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(a.Pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", a.Pattern)
	}
	if a.Path == "" {
		a.Path = "."
	}

	info, err := os.Stat(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %s", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path must be a directory")
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(a.Path), a.Pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.FromSlash(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error matching pattern: %s", err)
	}

	if len(matches) == 0 {
		return "no matches found", nil
	}
	return strings.Join(matches, "\n"), nil
}
